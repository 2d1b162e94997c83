package structure

import "github.com/hangarline/fleetdocs/constants"

// Section is a typed, confidence-scored segment of extracted invoice text.
// Sections are immutable after creation; the chunker splits by producing new
// chunks, never by mutating a section.
type Section struct {
	ID              string
	Title           string
	Content         string
	PageStart       int
	PageEnd         int
	Type            constants.SectionType
	Confidence      float32
	Importance      constants.Importance
	EstimatedTokens int
}

// ExtractResult is the Stage 1 outcome.
type ExtractResult struct {
	Sections                []Section
	Text                    string
	Pages                   int
	Truncated               bool
	TextExtractionSuccess   bool
	SemanticAnalysisSuccess bool
	Warnings                []string
}

// EstimateTokens approximates the context budget a text consumes. The ~4
// chars/token ratio tracks English invoice text closely enough for sizing.
func EstimateTokens(s string) int {
	if s == "" {
		return 0
	}
	return (len(s) + 3) / 4
}
