package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/constants"
)

const sampleInvoice = `ACME AIR SERVICES LLC
123 Hangar Road, Wichita KS
INVOICE #INV-2041

Reg No: N123AB
Serial Number: SN-7781
Work Order: WO-5521

PN-4482-A  Oil filter element  2  89.50  179.00
HOSE-71/2  Hydraulic hose assembly  1  412.00  412.00

Labor  1,240.00
Parts  591.00
Freight  45.00
Tax  150.08

Grand Total  2,026.08
`

func sectionOfType(t *testing.T, sections []Section, typ constants.SectionType) Section {
	t.Helper()
	for _, s := range sections {
		if s.Type == typ {
			return s
		}
	}
	t.Fatalf("no section of type %s", typ)
	return Section{}
}

func TestSegment_TypedSections(t *testing.T) {
	sections := Segment(sampleInvoice)
	require.NotEmpty(t, sections)

	header := sectionOfType(t, sections, constants.SectionHeader)
	assert.Contains(t, header.Content, "ACME AIR SERVICES")
	assert.Equal(t, constants.ImportanceHigh, header.Importance)

	totals := sectionOfType(t, sections, constants.SectionTotals)
	assert.Contains(t, totals.Content, "Grand Total")
	assert.Equal(t, constants.ImportanceCritical, totals.Importance)
	assert.GreaterOrEqual(t, totals.Confidence, float32(0.65))

	summary := sectionOfType(t, sections, constants.SectionFinancialSummary)
	assert.Contains(t, summary.Content, "Labor")
	assert.Contains(t, summary.Content, "Freight")
	assert.Contains(t, summary.Content, "Tax")
	assert.Equal(t, constants.ImportanceCritical, summary.Importance)

	items := sectionOfType(t, sections, constants.SectionLineItems)
	assert.Contains(t, items.Content, "PN-4482-A")
	assert.Contains(t, items.Content, "HOSE-71/2")

	meta := sectionOfType(t, sections, constants.SectionMetadata)
	assert.Contains(t, meta.Content, "N123AB")
	assert.Contains(t, meta.Content, "WO-5521")
	assert.Equal(t, constants.ImportanceNormal, meta.Importance)
}

func TestSegment_ConfidenceNeverClaimsCertainty(t *testing.T) {
	for _, s := range Segment(sampleInvoice) {
		assert.LessOrEqual(t, s.Confidence, float32(0.98), "section %s", s.Title)
		assert.Positive(t, s.Confidence, "section %s", s.Title)
	}
}

func TestSegment_UnmatchedTextLandsInOther(t *testing.T) {
	sections := Segment("just some plain narrative text\nnothing financial about it")

	require.Len(t, sections, 1)
	assert.Equal(t, constants.SectionOther, sections[0].Type)
	assert.Equal(t, constants.ImportanceNormal, sections[0].Importance)
}

func TestSegment_PageBoundaries(t *testing.T) {
	twoPages := "ACME MOTORS INC\nINVOICE 100\n\fGrand Total 250.00\n"
	sections := Segment(twoPages)

	totals := sectionOfType(t, sections, constants.SectionTotals)
	assert.Equal(t, 2, totals.PageStart)
	assert.Equal(t, 2, totals.PageEnd)

	header := sectionOfType(t, sections, constants.SectionHeader)
	assert.Equal(t, 1, header.PageStart)
}

func TestSectionTitleWithPages(t *testing.T) {
	assert.Equal(t, "Totals (p.3)", SectionTitleWithPages(Section{Title: "Totals", PageStart: 3, PageEnd: 3}))
	assert.Equal(t, "Line items (p.2-5)", SectionTitleWithPages(Section{Title: "Line items", PageStart: 2, PageEnd: 5}))
	assert.Equal(t, "Remaining text", SectionTitleWithPages(Section{Title: "Remaining text"}))
}
