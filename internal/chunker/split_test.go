package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/internal/structure"
)

func TestSplitContent_UnderBudgetStaysWhole(t *testing.T) {
	pieces := splitContent("a short section", 100)

	require.Len(t, pieces, 1)
	assert.Equal(t, "a short section", pieces[0])
}

func TestSplitContent_RespectsBudget(t *testing.T) {
	content := strings.Repeat("line item 42 oil filter 89.50\n", 200)

	pieces := splitContent(content, 100)

	require.Greater(t, len(pieces), 1)
	for i, p := range pieces {
		assert.LessOrEqual(t, structure.EstimateTokens(p), 100, "piece %d", i)
	}
}

func TestSplitContent_ConcatenationReconstructsInput(t *testing.T) {
	content := strings.Repeat("paragraph one\n\nparagraph two with more words\n\n", 80)

	pieces := splitContent(content, 50)

	assert.Equal(t, content, strings.Join(pieces, ""))
}

func TestSplitContent_PrefersParagraphBoundaries(t *testing.T) {
	content := strings.Repeat("w", 300) + "\n\n" + strings.Repeat("v", 300)

	pieces := splitContent(content, 100)

	require.GreaterOrEqual(t, len(pieces), 2)
	assert.True(t, strings.HasSuffix(pieces[0], "\n\n"))
}

func TestSplitContent_HardCutWhenNoBoundary(t *testing.T) {
	content := strings.Repeat("x", 2000)

	pieces := splitContent(content, 100)

	require.Greater(t, len(pieces), 1)
	assert.Equal(t, content, strings.Join(pieces, ""))
	assert.Len(t, pieces[0], 400)
}
