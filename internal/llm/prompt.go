package llm

import "strings"

// buildSystemPrompt composes the fixed extraction instruction for a chunk.
// The chunk's machine-readable ProcessingInstructions carry the per-section
// guidance; everything else is formatting hygiene.
func buildSystemPrompt(req ChunkRequest) string {
	parts := []string{
		"You are an invoice field extractor. Return ONLY a single JSON object that matches the provided JSON Schema.",
		req.ProcessingInstructions,
		"Use ISO-8601 dates (YYYY-MM-DD) and 3-letter ISO 4217 currency codes.",
		"Report money amounts as plain decimal strings without symbols or thousands separators.",
		"Only report fields among: " + strings.Join(req.ExpectedOutputFields, ", ") + ".",
		"Never output null and never invent a value. If a field is not present in the text, omit it.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(req ChunkRequest) string {
	var b strings.Builder
	b.WriteString("Invoice text chunk:\n")
	b.WriteString(req.ChunkText)
	b.WriteString("\n\nReturn ONLY JSON that matches the provided schema.")
	return b.String()
}
