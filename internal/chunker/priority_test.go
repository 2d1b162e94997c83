package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hangarline/fleetdocs/constants"
)

func TestPriorityBandsAreDisjoint(t *testing.T) {
	// every critical score must beat every high score, and every high score
	// must beat every normal score, no matter the type or confidence
	types := []constants.SectionType{
		constants.SectionHeader,
		constants.SectionFinancialSummary,
		constants.SectionTotals,
		constants.SectionLineItems,
		constants.SectionMetadata,
		constants.SectionOther,
	}
	confidences := []float32{0.1, 0.5, 0.9}

	minOf := func(imp constants.Importance) int {
		min := 11
		for _, typ := range types {
			for _, conf := range confidences {
				if p := priorityFor(typ, imp, conf); p < min {
					min = p
				}
			}
		}
		return min
	}
	maxOf := func(imp constants.Importance) int {
		max := 0
		for _, typ := range types {
			for _, conf := range confidences {
				if p := priorityFor(typ, imp, conf); p > max {
					max = p
				}
			}
		}
		return max
	}

	assert.Greater(t, minOf(constants.ImportanceCritical), maxOf(constants.ImportanceHigh))
	assert.Greater(t, minOf(constants.ImportanceHigh), maxOf(constants.ImportanceNormal))
}

func TestPriorityFinancialTypesTopTheirBand(t *testing.T) {
	assert.Equal(t, 10, priorityFor(constants.SectionTotals, constants.ImportanceCritical, 0.9))
	assert.Equal(t, 10, priorityFor(constants.SectionFinancialSummary, constants.ImportanceCritical, 0.9))
	assert.Equal(t, 7, priorityFor(constants.SectionLineItems, constants.ImportanceHigh, 0.9))
	assert.Equal(t, 7, priorityFor(constants.SectionHeader, constants.ImportanceHigh, 0.9))
}

func TestPriorityLowConfidenceStaysInBand(t *testing.T) {
	weak := priorityFor(constants.SectionTotals, constants.ImportanceCritical, 0.2)
	strong := priorityFor(constants.SectionTotals, constants.ImportanceCritical, 0.9)

	assert.Less(t, weak, strong)
	assert.GreaterOrEqual(t, weak, 9)
}
