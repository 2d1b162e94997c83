package chunker

import (
	"strings"

	"github.com/hangarline/fleetdocs/internal/structure"
)

// splitContent deterministically splits text into ordered pieces whose token
// estimates stay at or under budget. Splits prefer paragraph boundaries, then
// line boundaries, then hard cuts; concatenating the pieces in order
// reconstructs the input exactly.
func splitContent(content string, budgetTokens int) []string {
	if structure.EstimateTokens(content) <= budgetTokens {
		return []string{content}
	}
	budgetBytes := budgetTokens * 4

	var pieces []string
	rest := content
	for structure.EstimateTokens(rest) > budgetTokens {
		cut := splitPoint(rest, budgetBytes)
		pieces = append(pieces, rest[:cut])
		rest = rest[cut:]
	}
	if rest != "" {
		pieces = append(pieces, rest)
	}
	return pieces
}

// splitPoint finds the last acceptable boundary at or before limit.
func splitPoint(s string, limit int) int {
	if limit >= len(s) {
		return len(s)
	}
	window := s[:limit]
	if i := strings.LastIndex(window, "\n\n"); i > 0 {
		return i + 2
	}
	if i := strings.LastIndex(window, "\n"); i > 0 {
		return i + 1
	}
	if i := strings.LastIndex(window, " "); i > 0 {
		return i + 1
	}
	return limit
}
