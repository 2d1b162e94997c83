//go:build !integration

package consolidate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/internal/llm"
)

func ok(priority int, f llm.ChunkFields) ChunkOutcome {
	return ChunkOutcome{ChunkID: "c", Priority: priority, Fields: f}
}

func TestConsolidate_HighestPriorityWins(t *testing.T) {
	c := NewConsolidator(nil)

	cand := c.Consolidate([]ChunkOutcome{
		ok(3, llm.ChunkFields{VendorName: "Low Priority Shop", InvoiceDate: "2026-01-02"}),
		ok(9, llm.ChunkFields{VendorName: "ACME AIR SERVICES LLC", CurrencyCode: "USD"}),
	})

	assert.Equal(t, "ACME AIR SERVICES LLC", cand.VendorName)
	// low-priority chunk still fills fields the critical one left empty
	assert.Equal(t, "2026-01-02", cand.InvoiceDate)
	assert.Equal(t, "USD", cand.CurrencyCode)
}

func TestConsolidate_PlaceholderVendorLosesToRealOne(t *testing.T) {
	c := NewConsolidator(nil)

	cand := c.Consolidate([]ChunkOutcome{
		ok(9, llm.ChunkFields{VendorName: "Unknown Vendor"}),
		ok(4, llm.ChunkFields{VendorName: "Hangar Line Maintenance"}),
	})

	assert.Equal(t, "Hangar Line Maintenance", cand.VendorName)
}

func TestConsolidate_TotalFromHighestPriorityPositive(t *testing.T) {
	c := NewConsolidator(nil)

	cand := c.Consolidate([]ChunkOutcome{
		ok(10, llm.ChunkFields{Total: "0.00"}),
		ok(8, llm.ChunkFields{Total: "1250.40"}),
		ok(2, llm.ChunkFields{Total: "999.99"}),
	})

	assert.InDelta(t, 1250.40, cand.Total, 1e-9)
}

func TestConsolidate_BreakdownSummedAcrossChunks(t *testing.T) {
	c := NewConsolidator(nil)

	cand := c.Consolidate([]ChunkOutcome{
		ok(7, llm.ChunkFields{LaborTotal: "100.00", PartsTotal: "50.00"}),
		ok(6, llm.ChunkFields{LaborTotal: "40.00", TaxTotal: "19.00"}),
	})

	assert.InDelta(t, 140.00, cand.Breakdown.Labor, 1e-9)
	assert.InDelta(t, 50.00, cand.Breakdown.Parts, 1e-9)
	assert.InDelta(t, 19.00, cand.Breakdown.Tax, 1e-9)
	assert.InDelta(t, 209.00, cand.Breakdown.Sum(), 1e-9)
}

func TestConsolidate_PartsAppendedNotDeduplicated(t *testing.T) {
	c := NewConsolidator(nil)

	cand := c.Consolidate([]ChunkOutcome{
		ok(7, llm.ChunkFields{Parts: []llm.Part{{Number: "OF-100", Quantity: "1"}}}),
		ok(6, llm.ChunkFields{Parts: []llm.Part{{Number: "SP-200", Quantity: "4"}, {Number: "OF-100", Quantity: "1"}}}),
	})

	require.Len(t, cand.PartsList, 3)
	assert.Equal(t, "OF-100", cand.PartsList[0].Number)
}

func TestConsolidate_ConfidenceMeanErodedByFailures(t *testing.T) {
	c := NewConsolidator(nil)

	cand := c.Consolidate([]ChunkOutcome{
		ok(9, llm.ChunkFields{VendorName: "ACME", ModelConfidence: 0.9}),
		ok(5, llm.ChunkFields{ModelConfidence: 0.7}),
		{ChunkID: "x", Priority: 5, Err: errors.New("boom")},
		{ChunkID: "y", Priority: 2, Err: errors.New("boom")},
	})

	assert.Equal(t, 4, cand.ChunksTotal)
	assert.Equal(t, 2, cand.ChunksFailed)
	assert.Contains(t, cand.Flags, "partial_extraction")
	// mean(0.9, 0.7) scaled by the surviving fraction 2/4
	assert.InDelta(t, 0.4, cand.Confidence, 1e-6)
}

func TestConsolidate_FailedChunksContributeNoFields(t *testing.T) {
	c := NewConsolidator(nil)

	cand := c.Consolidate([]ChunkOutcome{
		{Priority: 10, Fields: llm.ChunkFields{VendorName: "Ghost Corp"}, Err: errors.New("timeout")},
		ok(1, llm.ChunkFields{VendorName: "Real Shop"}),
	})

	assert.Equal(t, "Real Shop", cand.VendorName)
}
