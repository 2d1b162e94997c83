package chunker

import "github.com/hangarline/fleetdocs/constants"

// Chunk is a bounded unit of document text sized for one extraction call.
// A section whose token estimate exceeds the budget yields several ordered
// chunks whose concatenated content reconstructs the section.
type Chunk struct {
	ID                     string
	SourceSectionID        string
	Title                  string
	Content                string
	TokenCount             int
	Importance             constants.Importance
	Priority               int // 1..10, monotonic with importance per section type
	ProcessingInstructions string
	ExpectedOutputFields   []string
	OpenAIOptimized        bool
}

// Plan schedules chunk extraction for one document. Built once from the full
// chunk set; immutable.
type Plan struct {
	Strategy           constants.PlanStrategy
	SequentialOrder    []string   // chunk IDs, for sequential plans
	BatchGroups        [][]string // chunk IDs grouped under the concurrency cap
	EstimatedTotalTime int        // seconds
}

// Result is the Stage 2 outcome.
type Result struct {
	Chunks          []Chunk
	Plan            Plan
	TokenEfficiency float64 // observability only, never correctness
}
