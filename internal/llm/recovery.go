package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// The extraction service is asked for a bare JSON object but real responses
// come back wrapped in prose, fenced in markdown, truncated, or carrying the
// literal token "undefined". RecoverJSONObject runs an ordered chain of pure
// text->JSON recovery strategies; each builds on the previous output and the
// chain stops at the first stage that yields a parseable object.
type recoveryStrategy struct {
	name  string
	apply func([]byte) []byte
}

var recoveryChain = []recoveryStrategy{
	{name: "strip_code_fences", apply: stripCodeFences},
	{name: "brace_window", apply: braceWindow},
	{name: "strip_control_chars", apply: stripControlChars},
	{name: "undefined_to_null", apply: undefinedToNull},
}

// RecoverJSONObject returns the recovered JSON object bytes, the name of the
// strategy that made it parse ("" when the raw payload was already clean),
// or an error when the whole chain fails.
func RecoverJSONObject(raw []byte) ([]byte, string, error) {
	if obj, ok := parseObject(raw); ok {
		return obj, "", nil
	}
	cur := raw
	for _, s := range recoveryChain {
		cur = s.apply(cur)
		if obj, ok := parseObject(cur); ok {
			return obj, s.name, nil
		}
	}
	return nil, "", fmt.Errorf("no recovery strategy produced a JSON object")
}

// parseObject accepts only a single JSON object, not arrays or scalars.
func parseObject(b []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return nil, false
	}
	return trimmed, true
}

var reFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

func stripCodeFences(b []byte) []byte {
	if m := reFence.FindSubmatch(b); m != nil {
		return m[1]
	}
	// an unterminated fence still hides the payload behind the opener
	s := string(b)
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		rest = strings.TrimPrefix(rest, "json")
		return []byte(strings.TrimSpace(rest))
	}
	return b
}

// braceWindow cuts the response down to the first '{' through the last '}',
// discarding surrounding prose or explanation.
func braceWindow(b []byte) []byte {
	first := bytes.IndexByte(b, '{')
	last := bytes.LastIndexByte(b, '}')
	if first < 0 || last <= first {
		return b
	}
	return b[first : last+1]
}

// stripControlChars removes control bytes that make encoding/json reject an
// otherwise sound payload. Tabs and newlines stay, they are legal whitespace.
func stripControlChars(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			continue
		}
		out = append(out, c)
	}
	return out
}

var reUndefined = regexp.MustCompile(`(?::\s*)undefined\b`)

func undefinedToNull(b []byte) []byte {
	return reUndefined.ReplaceAllFunc(b, func(m []byte) []byte {
		return bytes.Replace(m, []byte("undefined"), []byte("null"), 1)
	})
}
