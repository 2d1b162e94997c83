package constants

// SectionType classifies a segment of extracted invoice text.
type SectionType string

const (
	SectionHeader           SectionType = "header"
	SectionFinancialSummary SectionType = "financial_summary"
	SectionTotals           SectionType = "totals"
	SectionLineItems        SectionType = "line_items"
	SectionMetadata         SectionType = "metadata"
	SectionOther            SectionType = "other"
)

// Importance ranks how much a section matters to the extraction outcome.
// Financial summaries and totals are always Critical.
type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceNormal   Importance = "normal"
)

// Rank returns an ordering value so priorities stay monotonic with importance.
func (i Importance) Rank() int {
	switch i {
	case ImportanceCritical:
		return 3
	case ImportanceHigh:
		return 2
	default:
		return 1
	}
}
