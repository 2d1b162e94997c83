package constants

import "strings"

// Placeholder sentinels: vendor values a buggy extraction run may have
// fabricated. A record carrying one of these must never be served from
// cache or written to storage.
const (
	PlaceholderUnknownVendor = "Unknown Vendor"
	PlaceholderExtractedFrom = "Extracted from " // templated "Extracted from <filename>"
	PlaceholderOCRFailure    = "OCR_FAILED"
)

// IsPlaceholderVendor reports whether a vendor name is a fabricated default
// rather than content actually read from a document.
func IsPlaceholderVendor(vendor string) bool {
	v := strings.TrimSpace(vendor)
	if v == "" {
		return true
	}
	if strings.EqualFold(v, PlaceholderUnknownVendor) {
		return true
	}
	if strings.HasPrefix(v, PlaceholderExtractedFrom) {
		return true
	}
	if strings.Contains(strings.ToUpper(v), PlaceholderOCRFailure) {
		return true
	}
	return false
}
