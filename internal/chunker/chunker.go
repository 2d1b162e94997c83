package chunker

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/internal/structure"
)

type Config struct {
	TokenBudget         int // per-chunk ceiling
	SequentialMaxChunks int // at or below this the plan stays sequential
	MaxConcurrentChunks int // batch group size for parallel plans
}

// Chunker converts sections into bounded work units and builds the
// processing plan for them.
type Chunker struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Chunker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TokenBudget <= 0 {
		cfg.TokenBudget = 3000
	}
	if cfg.SequentialMaxChunks <= 0 {
		cfg.SequentialMaxChunks = 3
	}
	if cfg.MaxConcurrentChunks <= 0 {
		cfg.MaxConcurrentChunks = 4
	}
	return &Chunker{cfg: cfg, logger: logger}
}

// Plan builds chunks and their processing plan from Stage 1 sections.
// strategyHint is the viability routing decision for the whole document.
func (c *Chunker) Plan(sections []structure.Section, strategyHint constants.Strategy) (Result, error) {
	if len(sections) == 0 {
		return Result{}, fmt.Errorf("no sections to chunk")
	}

	var chunks []Chunk
	for _, sec := range sections {
		pieces := splitContent(sec.Content, c.cfg.TokenBudget)
		for i, piece := range pieces {
			title := structure.SectionTitleWithPages(sec)
			if len(pieces) > 1 {
				title = fmt.Sprintf("%s [%d/%d]", title, i+1, len(pieces))
			}
			chunks = append(chunks, Chunk{
				ID:                     uuid.NewString(),
				SourceSectionID:        sec.ID,
				Title:                  title,
				Content:                piece,
				TokenCount:             structure.EstimateTokens(piece),
				Importance:             sec.Importance,
				Priority:               priorityFor(sec.Type, sec.Importance, sec.Confidence),
				ProcessingInstructions: instructions(sec.Type),
				ExpectedOutputFields:   expectedFields(sec.Type),
				OpenAIOptimized:        true,
			})
		}
	}

	plan := c.buildPlan(chunks, strategyHint)

	var usedTokens int
	for _, ch := range chunks {
		usedTokens += ch.TokenCount
	}
	efficiency := float64(usedTokens) / float64(len(chunks)*c.cfg.TokenBudget) * 100

	c.logger.Info("chunker.plan.ok",
		"sections", len(sections),
		"chunks", len(chunks),
		"strategy", plan.Strategy,
		"batch_groups", len(plan.BatchGroups),
		"token_efficiency_pct", fmt.Sprintf("%.1f", efficiency),
	)
	return Result{Chunks: chunks, Plan: plan, TokenEfficiency: efficiency}, nil
}

func (c *Chunker) buildPlan(chunks []Chunk, hint constants.Strategy) Plan {
	// priority-descending order; stable so same-priority chunks keep
	// document order
	ordered := make([]Chunk, len(chunks))
	copy(ordered, chunks)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	ids := func(cs []Chunk) []string {
		out := make([]string, len(cs))
		for i, ch := range cs {
			out[i] = ch.ID
		}
		return out
	}

	perChunkSeconds := 6

	if hint == constants.StrategyDirect || len(chunks) <= c.cfg.SequentialMaxChunks {
		return Plan{
			Strategy:           constants.PlanSequential,
			SequentialOrder:    ids(ordered),
			EstimatedTotalTime: perChunkSeconds * len(chunks),
		}
	}

	var critical, remainder []Chunk
	for _, ch := range ordered {
		if ch.Importance == constants.ImportanceCritical {
			critical = append(critical, ch)
		} else {
			remainder = append(remainder, ch)
		}
	}

	group := func(cs []Chunk) [][]string {
		var groups [][]string
		for len(cs) > 0 {
			n := c.cfg.MaxConcurrentChunks
			if n > len(cs) {
				n = len(cs)
			}
			groups = append(groups, ids(cs[:n]))
			cs = cs[n:]
		}
		return groups
	}

	if len(critical) > 0 && len(remainder) > 0 {
		// critical chunks run to completion first, the rest is batched
		groups := group(remainder)
		rounds := len(critical) + len(groups)
		return Plan{
			Strategy:           constants.PlanHybrid,
			SequentialOrder:    ids(critical),
			BatchGroups:        groups,
			EstimatedTotalTime: perChunkSeconds * rounds,
		}
	}

	groups := group(ordered)
	return Plan{
		Strategy:           constants.PlanParallel,
		BatchGroups:        groups,
		EstimatedTotalTime: perChunkSeconds * len(groups),
	}
}
