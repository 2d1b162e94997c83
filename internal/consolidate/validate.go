package consolidate

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hangarline/fleetdocs/constants"
)

// RejectReason is the typed reason a candidate was refused. The caller
// surfaces it verbatim.
type RejectReason string

const (
	ReasonInsufficientText     RejectReason = "insufficient_text"
	ReasonNoFinancialData      RejectReason = "no_financial_data"
	ReasonPlaceholderVendor    RejectReason = "placeholder_vendor"
	ReasonMalformedLLMResponse RejectReason = "malformed_llm_response"
)

// Rejection destroys a candidate. There is no fallback path that substitutes
// a placeholder record for a rejected one.
type Rejection struct {
	Reason RejectReason
	Detail string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("validation rejected (%s): %s", r.Reason, r.Detail)
}

type ValidatorConfig struct {
	MinRecordConfidence float32 // below this the record is flagged for review
	ReconcileTolerance  float64 // relative drift allowed between breakdown and total
}

// Validator enforces the no-fabrication policy: a record either carries
// values actually read from the document, or it does not exist.
type Validator struct {
	cfg    ValidatorConfig
	logger *slog.Logger
}

func NewValidator(cfg ValidatorConfig, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinRecordConfidence <= 0 {
		cfg.MinRecordConfidence = 0.60
	}
	if cfg.ReconcileTolerance <= 0 {
		cfg.ReconcileTolerance = 0.02
	}
	return &Validator{cfg: cfg, logger: logger}
}

// Validate turns a candidate into a ValidatedRecord or a typed rejection.
func (v *Validator) Validate(cand Candidate, kind constants.RecordKind, fingerprint string) (*ValidatedRecord, *Rejection) {
	if cand.ChunksTotal > 0 && cand.ChunksFailed == cand.ChunksTotal {
		return nil, &Rejection{
			Reason: ReasonMalformedLLMResponse,
			Detail: fmt.Sprintf("all %d extraction calls failed", cand.ChunksTotal),
		}
	}
	if constants.IsPlaceholderVendor(cand.VendorName) {
		return nil, &Rejection{
			Reason: ReasonPlaceholderVendor,
			Detail: fmt.Sprintf("vendor %q is a placeholder", cand.VendorName),
		}
	}
	if cand.Total <= 0 {
		return nil, &Rejection{
			Reason: ReasonNoFinancialData,
			Detail: "total amount missing or not positive",
		}
	}
	if cand.CurrencyCode == "" {
		return nil, &Rejection{
			Reason: ReasonNoFinancialData,
			Detail: "currency code missing",
		}
	}

	rec := &ValidatedRecord{
		Kind:                kind,
		Fingerprint:         fingerprint,
		VendorName:          cand.VendorName,
		CurrencyCode:        cand.CurrencyCode,
		Total:               cand.Total,
		Breakdown:           cand.Breakdown,
		PartsList:           cand.PartsList,
		WorkOrder:           cand.WorkOrder,
		VehicleRegistration: cand.VehicleRegistration,
		SerialNumber:        cand.SerialNumber,
		Description:         cand.Description,
		Flags:               append([]string(nil), cand.Flags...),
		Source:              Source{OCRExtracted: true, Confidence: cand.Confidence},
	}

	if cand.InvoiceDate != "" {
		if d, err := time.Parse("2006-01-02", cand.InvoiceDate); err == nil {
			rec.InvoiceDate = &d
		} else {
			rec.Flags = append(rec.Flags, "unparseable_invoice_date")
		}
	} else {
		rec.Flags = append(rec.Flags, "missing_invoice_date")
	}

	canon, ok := constants.Canonicalize(cand.Category)
	if !ok && cand.Category != "" {
		v.logger.Warn("validate.category_unknown", "label", cand.Category)
	}
	rec.Category = canon

	// Reconciliation: a drifting breakdown is data to audit, not a failure.
	if sum := rec.Breakdown.Sum(); sum > 0 {
		drift := math.Abs(sum-rec.Total) / rec.Total
		if drift > v.cfg.ReconcileTolerance {
			rec.Flags = append(rec.Flags,
				fmt.Sprintf("total_breakdown_mismatch: breakdown %.2f vs total %.2f", sum, rec.Total))
		}
	}

	rec.NeedsReview = cand.Confidence < v.cfg.MinRecordConfidence || len(rec.Flags) > 0

	v.logger.Info("validate.ok",
		"vendor", rec.VendorName,
		"total", rec.Total,
		"currency", rec.CurrencyCode,
		"flags", len(rec.Flags),
		"needs_review", rec.NeedsReview,
	)
	return rec, nil
}

// CachedRecordValid is the same predicate applied to records served from
// cache: a stored record that would not pass validation today is corrupt and
// must not be returned.
func CachedRecordValid(vendor string, total float64, currency string) bool {
	if constants.IsPlaceholderVendor(vendor) {
		return false
	}
	if total <= 0 {
		return false
	}
	return currency != ""
}
