//go:build !integration

package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/constants"
)

func goodCandidate() Candidate {
	return Candidate{
		VendorName:   "ACME AIR SERVICES LLC",
		InvoiceDate:  "2026-03-14",
		CurrencyCode: "USD",
		Total:        1250.40,
		Confidence:   0.85,
		ChunksTotal:  3,
	}
}

func TestValidate_AcceptsCompleteCandidate(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	rec, rej := v.Validate(goodCandidate(), constants.KindMaintenance, "abc123")

	require.Nil(t, rej)
	require.NotNil(t, rec)
	assert.Equal(t, constants.KindMaintenance, rec.Kind)
	assert.Equal(t, "abc123", rec.Fingerprint)
	require.NotNil(t, rec.InvoiceDate)
	assert.Equal(t, "2026-03-14", rec.InvoiceDate.Format("2006-01-02"))
	assert.True(t, rec.Source.OCRExtracted)
	assert.False(t, rec.NeedsReview)
	assert.Empty(t, rec.Flags)
}

func TestValidate_AllChunksFailedIsMalformed(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)
	cand := goodCandidate()
	cand.ChunksTotal = 2
	cand.ChunksFailed = 2

	rec, rej := v.Validate(cand, constants.KindMaintenance, "abc")

	assert.Nil(t, rec)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonMalformedLLMResponse, rej.Reason)
}

func TestValidate_PlaceholderVendorRejected(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	for _, vendor := range []string{"", "Unknown Vendor", "Extracted from invoice.pdf", "OCR_FAILED scan"} {
		cand := goodCandidate()
		cand.VendorName = vendor

		rec, rej := v.Validate(cand, constants.KindExpense, "abc")

		assert.Nil(t, rec, "vendor %q", vendor)
		require.NotNil(t, rej, "vendor %q", vendor)
		assert.Equal(t, ReasonPlaceholderVendor, rej.Reason)
	}
}

func TestValidate_MissingFinancialsRejected(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	noTotal := goodCandidate()
	noTotal.Total = 0
	_, rej := v.Validate(noTotal, constants.KindMaintenance, "abc")
	require.NotNil(t, rej)
	assert.Equal(t, ReasonNoFinancialData, rej.Reason)

	noCurrency := goodCandidate()
	noCurrency.CurrencyCode = ""
	_, rej = v.Validate(noCurrency, constants.KindMaintenance, "abc")
	require.NotNil(t, rej)
	assert.Equal(t, ReasonNoFinancialData, rej.Reason)
}

func TestValidate_DateProblemsFlagNotReject(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	missing := goodCandidate()
	missing.InvoiceDate = ""
	rec, rej := v.Validate(missing, constants.KindMaintenance, "abc")
	require.Nil(t, rej)
	assert.Contains(t, rec.Flags, "missing_invoice_date")
	assert.True(t, rec.NeedsReview)

	garbled := goodCandidate()
	garbled.InvoiceDate = "March 14th"
	rec, rej = v.Validate(garbled, constants.KindMaintenance, "abc")
	require.Nil(t, rej)
	assert.Nil(t, rec.InvoiceDate)
	assert.Contains(t, rec.Flags, "unparseable_invoice_date")
}

func TestValidate_BreakdownDriftFlagged(t *testing.T) {
	v := NewValidator(ValidatorConfig{ReconcileTolerance: 0.02}, nil)

	drifting := goodCandidate()
	drifting.Total = 100.00
	drifting.Breakdown = Breakdown{Labor: 60, Parts: 60}
	rec, rej := v.Validate(drifting, constants.KindMaintenance, "abc")
	require.Nil(t, rej)
	require.Len(t, rec.Flags, 1)
	assert.Contains(t, rec.Flags[0], "total_breakdown_mismatch")
	assert.True(t, rec.NeedsReview)

	within := goodCandidate()
	within.Total = 100.00
	within.Breakdown = Breakdown{Labor: 60, Parts: 39.50}
	rec, rej = v.Validate(within, constants.KindMaintenance, "abc")
	require.Nil(t, rej)
	assert.Empty(t, rec.Flags)
}

func TestValidate_LowConfidenceNeedsReview(t *testing.T) {
	v := NewValidator(ValidatorConfig{MinRecordConfidence: 0.60}, nil)

	cand := goodCandidate()
	cand.Confidence = 0.40

	rec, rej := v.Validate(cand, constants.KindMaintenance, "abc")

	require.Nil(t, rej)
	assert.True(t, rec.NeedsReview)
	assert.Empty(t, rec.Flags)
}

func TestValidate_CategoryCanonicalized(t *testing.T) {
	v := NewValidator(ValidatorConfig{}, nil)

	cand := goodCandidate()
	cand.Category = "diesel"

	rec, rej := v.Validate(cand, constants.KindExpense, "abc")

	require.Nil(t, rej)
	assert.Equal(t, constants.Fuel, rec.Category)
}

func TestCachedRecordValid(t *testing.T) {
	assert.True(t, CachedRecordValid("ACME", 10.00, "USD"))
	assert.False(t, CachedRecordValid("Unknown Vendor", 10.00, "USD"))
	assert.False(t, CachedRecordValid("ACME", 0, "USD"))
	assert.False(t, CachedRecordValid("ACME", 10.00, ""))
}
