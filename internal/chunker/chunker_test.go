package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/internal/structure"
)

func section(id string, typ constants.SectionType, imp constants.Importance, content string) structure.Section {
	return structure.Section{
		ID:              id,
		Title:           string(typ),
		Content:         content,
		PageStart:       1,
		PageEnd:         1,
		Type:            typ,
		Confidence:      0.80,
		Importance:      imp,
		EstimatedTokens: structure.EstimateTokens(content),
	}
}

func TestPlan_NoSectionsIsAnError(t *testing.T) {
	c := New(Config{}, nil)

	_, err := c.Plan(nil, constants.StrategyDirect)

	assert.Error(t, err)
}

func TestPlan_SmallDocumentStaysSequential(t *testing.T) {
	c := New(Config{TokenBudget: 1000, SequentialMaxChunks: 3, MaxConcurrentChunks: 4}, nil)
	sections := []structure.Section{
		section("s1", constants.SectionTotals, constants.ImportanceCritical, "Grand Total 99.00"),
		section("s2", constants.SectionHeader, constants.ImportanceHigh, "Acme Motors Inc"),
	}

	res, err := c.Plan(sections, constants.StrategyMultiStage)

	require.NoError(t, err)
	assert.Equal(t, constants.PlanSequential, res.Plan.Strategy)
	assert.Len(t, res.Plan.SequentialOrder, 2)
	assert.Empty(t, res.Plan.BatchGroups)
}

func TestPlan_DirectHintForcesSequential(t *testing.T) {
	c := New(Config{TokenBudget: 50, SequentialMaxChunks: 1, MaxConcurrentChunks: 2}, nil)
	big := strings.Repeat("some invoice text here\n", 100)
	sections := []structure.Section{
		section("s1", constants.SectionOther, constants.ImportanceNormal, big),
	}

	res, err := c.Plan(sections, constants.StrategyDirect)

	require.NoError(t, err)
	assert.Greater(t, len(res.Chunks), 1)
	assert.Equal(t, constants.PlanSequential, res.Plan.Strategy)
}

func TestPlan_SequentialOrderIsPriorityDescending(t *testing.T) {
	c := New(Config{TokenBudget: 1000, SequentialMaxChunks: 10}, nil)
	sections := []structure.Section{
		section("low", constants.SectionMetadata, constants.ImportanceNormal, "Reg No N123AB"),
		section("top", constants.SectionTotals, constants.ImportanceCritical, "Grand Total 99.00"),
		section("mid", constants.SectionLineItems, constants.ImportanceHigh, "PN-1 filter 1 9.99 9.99"),
	}

	res, err := c.Plan(sections, constants.StrategyDirect)
	require.NoError(t, err)

	byID := map[string]Chunk{}
	for _, ch := range res.Chunks {
		byID[ch.ID] = ch
	}
	order := res.Plan.SequentialOrder
	require.Len(t, order, 3)
	assert.Equal(t, "top", byID[order[0]].SourceSectionID)
	assert.Equal(t, "mid", byID[order[1]].SourceSectionID)
	assert.Equal(t, "low", byID[order[2]].SourceSectionID)
}

func TestPlan_HybridWhenCriticalAndRemainderCoexist(t *testing.T) {
	c := New(Config{TokenBudget: 50, SequentialMaxChunks: 2, MaxConcurrentChunks: 2}, nil)
	big := strings.Repeat("narrative body text for the appendix\n", 60)
	sections := []structure.Section{
		section("s1", constants.SectionTotals, constants.ImportanceCritical, "Grand Total 99.00"),
		section("s2", constants.SectionOther, constants.ImportanceNormal, big),
	}

	res, err := c.Plan(sections, constants.StrategyMultiStage)

	require.NoError(t, err)
	assert.Equal(t, constants.PlanHybrid, res.Plan.Strategy)
	require.NotEmpty(t, res.Plan.SequentialOrder)
	require.NotEmpty(t, res.Plan.BatchGroups)
	for _, group := range res.Plan.BatchGroups {
		assert.LessOrEqual(t, len(group), 2)
	}
}

func TestPlan_ParallelWithoutCriticalSections(t *testing.T) {
	c := New(Config{TokenBudget: 50, SequentialMaxChunks: 2, MaxConcurrentChunks: 3}, nil)
	big := strings.Repeat("plain body text without financial signals\n", 60)
	sections := []structure.Section{
		section("s1", constants.SectionOther, constants.ImportanceNormal, big),
	}

	res, err := c.Plan(sections, constants.StrategyMultiStage)

	require.NoError(t, err)
	assert.Equal(t, constants.PlanParallel, res.Plan.Strategy)
	assert.Empty(t, res.Plan.SequentialOrder)
	total := 0
	for _, group := range res.Plan.BatchGroups {
		assert.LessOrEqual(t, len(group), 3)
		total += len(group)
	}
	assert.Equal(t, len(res.Chunks), total)
}

func TestPlan_SplitChunksCarryOrderedTitles(t *testing.T) {
	c := New(Config{TokenBudget: 50, SequentialMaxChunks: 100}, nil)
	big := strings.Repeat("line item content repeated many times over\n", 40)
	sections := []structure.Section{
		section("s1", constants.SectionLineItems, constants.ImportanceHigh, big),
	}

	res, err := c.Plan(sections, constants.StrategyDirect)
	require.NoError(t, err)
	require.Greater(t, len(res.Chunks), 1)

	var rebuilt strings.Builder
	for i, ch := range res.Chunks {
		assert.Contains(t, ch.Title, "[")
		assert.Equal(t, "s1", ch.SourceSectionID)
		assert.LessOrEqual(t, ch.TokenCount, 50, "chunk %d", i)
		rebuilt.WriteString(ch.Content)
	}
	assert.Equal(t, big, rebuilt.String())
}

func TestPlan_ChunksCarryInstructionsAndFields(t *testing.T) {
	c := New(Config{}, nil)
	sections := []structure.Section{
		section("s1", constants.SectionTotals, constants.ImportanceCritical, "Grand Total 99.00"),
	}

	res, err := c.Plan(sections, constants.StrategyDirect)
	require.NoError(t, err)
	require.Len(t, res.Chunks, 1)

	ch := res.Chunks[0]
	assert.NotEmpty(t, ch.ProcessingInstructions)
	assert.Contains(t, ch.ExpectedOutputFields, FieldTotal)
	assert.True(t, ch.OpenAIOptimized)
	assert.Positive(t, res.TokenEfficiency)
}
