package viability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/constants"
)

func TestClassify_NoTextIsNotViable(t *testing.T) {
	c := NewClassifier(8)

	res := c.Classify(Metadata{PageCount: 3, SizeBytes: 1 << 20, HasExtractableText: false})

	assert.False(t, res.IsViable)
	assert.Empty(t, res.Strategy)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "no extractable text")
	assert.NotEmpty(t, res.Recommendations)
}

func TestClassify_RoutingBoundary(t *testing.T) {
	c := NewClassifier(8)

	atThreshold := c.Classify(Metadata{PageCount: 8, SizeBytes: 1 << 20, HasExtractableText: true})
	assert.True(t, atThreshold.IsViable)
	assert.Equal(t, constants.StrategyDirect, atThreshold.Strategy)

	overThreshold := c.Classify(Metadata{PageCount: 9, SizeBytes: 1 << 20, HasExtractableText: true})
	assert.True(t, overThreshold.IsViable)
	assert.Equal(t, constants.StrategyMultiStage, overThreshold.Strategy)
}

func TestClassify_Complexity(t *testing.T) {
	c := NewClassifier(8)

	tests := []struct {
		name  string
		pages int
		size  int
		want  constants.Complexity
	}{
		{"small receipt", 1, 200 << 10, constants.ComplexityLow},
		{"normal invoice", 10, 3 << 20, constants.ComplexityMedium},
		{"service report", 40, 20 << 20, constants.ComplexityHigh},
		{"vehicle file dump", 120, 80 << 20, constants.ComplexityExtreme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(Metadata{PageCount: tt.pages, SizeBytes: tt.size, HasExtractableText: true})
			assert.Equal(t, tt.want, res.Complexity)
		})
	}
}

func TestClassify_ExtremeLowersConfidence(t *testing.T) {
	c := NewClassifier(8)

	normal := c.Classify(Metadata{PageCount: 20, SizeBytes: 4 << 20, HasExtractableText: true})
	extreme := c.Classify(Metadata{PageCount: 200, SizeBytes: 4 << 20, HasExtractableText: true})

	assert.Less(t, extreme.Confidence, normal.Confidence)
	assert.NotEmpty(t, extreme.Warnings)
	assert.NotEmpty(t, extreme.Recommendations)
}

func TestClassify_EstimatesGrowWithPages(t *testing.T) {
	c := NewClassifier(8)

	small := c.Classify(Metadata{PageCount: 2, SizeBytes: 1 << 20, HasExtractableText: true})
	large := c.Classify(Metadata{PageCount: 30, SizeBytes: 1 << 20, HasExtractableText: true})

	assert.Greater(t, large.EstimatedTimeSeconds, small.EstimatedTimeSeconds)
	assert.Greater(t, large.EstimatedCost, small.EstimatedCost)
}
