package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// NormalizeFields cleans a recovered JSON object before schema validation:
// drops null/empty optionals, coerces numeric money values to decimal
// strings, normalizes casing, and removes keys outside the allowed set so
// additionalProperties=false does not reject an otherwise good payload.
func NormalizeFields(raw []byte, allowed []string, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("normalize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	moneyFields := []string{"total", "labor_total", "parts_total", "services_total", "freight_total", "tax_total"}
	for _, k := range moneyFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			m[k] = fmt.Sprintf("%.2f", t)
		case string:
			s := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(t, "$"), "€"))
			s = strings.ReplaceAll(s, ",", "")
			if s == "" || strings.EqualFold(s, "null") {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	if v, ok := m["currency_code"].(string); ok {
		m["currency_code"] = strings.ToUpper(strings.TrimSpace(v))
	}

	trimKeys := []string{"vendor_name", "invoice_date", "work_order", "vehicle_registration", "serial_number", "category", "description"}
	for _, k := range trimKeys {
		if v, ok := m[k].(string); ok {
			s := strings.TrimSpace(v)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	allowedSet := make(map[string]struct{}, len(allowed)+1)
	for _, f := range allowed {
		allowedSet[f] = struct{}{}
	}
	allowedSet["confidence"] = struct{}{}
	for k := range m {
		if _, ok := allowedSet[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("normalize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize", "dropped", dropped)
	}
	return out, dropped, nil
}
