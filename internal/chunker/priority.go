package chunker

import "github.com/hangarline/fleetdocs/constants"

// Priority bands per importance. Critical chunks always outrank high, which
// always outrank normal, regardless of the confidence adjustment.
const (
	criticalBase = 9  // 9..10
	highBase     = 6  // 6..8
	normalBase   = 1  // 1..5
)

// priorityFor scores a chunk from its section's importance, type and
// confidence. Low confidence trims the score inside the band: low-confidence
// critical content is still attempted first, just flagged.
func priorityFor(typ constants.SectionType, importance constants.Importance, confidence float32) int {
	var base, ceil int
	switch importance {
	case constants.ImportanceCritical:
		base, ceil = criticalBase, 10
	case constants.ImportanceHigh:
		base, ceil = highBase, 8
	default:
		base, ceil = normalBase, 5
	}

	score := base
	// financial section types bias to the top of their band
	switch typ {
	case constants.SectionFinancialSummary, constants.SectionTotals:
		score = ceil
	case constants.SectionLineItems, constants.SectionHeader:
		score = base + 1
	}
	if score > ceil {
		score = ceil
	}

	// slight reduction for weak confidence, never below the band floor
	if confidence < 0.5 && score > base {
		score--
	}
	return score
}
