package structure

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"

	WindowBytes          int // streaming window size
	MaxTextBytes         int // hard ceiling on accumulated text
	MinTextChars         int // below this -> InsufficientText
	ProbeBytes           int // single-window probe budget for viability
	MinSectionConfidence float32
}

// Extractor pulls raw text out of a stored PDF and segments it into typed
// sections. Text extraction is windowed and capped so memory stays bounded
// regardless of input size.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.WindowBytes <= 0 {
		cfg.WindowBytes = 64 << 10
	}
	if cfg.MaxTextBytes < cfg.WindowBytes {
		cfg.MaxTextBytes = 512 << 10
	}
	if cfg.MinTextChars <= 0 {
		cfg.MinTextChars = 50
	}
	if cfg.ProbeBytes <= 0 {
		cfg.ProbeBytes = 4 << 10
	}
	if cfg.MinSectionConfidence <= 0 {
		cfg.MinSectionConfidence = 0.50
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner. Tests use it to feed canned text.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Extract runs the text pull and segmentation for a stored document. The
// strategy hint from Stage 0 does not change what is extracted today; it is
// carried for observability and downstream planners.
func (e *Extractor) Extract(ctx context.Context, path string, hint constants.Strategy) (ExtractResult, error) {
	start := time.Now()
	fp := common.FingerprintFromContext(ctx)

	text, truncated, err := e.pullText(ctx, path, e.cfg.MaxTextBytes)
	if err != nil {
		e.logger.Error("structure.extract.text_failed", "path", path, "fingerprint", fp, "error", err)
		return ExtractResult{}, fmt.Errorf("%w: %v", common.ErrInsufficientText, err)
	}

	res := ExtractResult{
		Text:      text,
		Truncated: truncated,
		// form feed is the page separator pdftotext emits
		Pages: 1 + strings.Count(text, "\f"),
	}
	if truncated {
		res.Warnings = append(res.Warnings, "text ceiling reached; tail of document not analyzed")
	}

	if countChars(text) < e.cfg.MinTextChars {
		res.TextExtractionSuccess = false
		e.logger.Warn("structure.extract.insufficient_text",
			"path", path, "fingerprint", fp, "chars", countChars(text), "min", e.cfg.MinTextChars)
		return res, common.ErrInsufficientText
	}
	res.TextExtractionSuccess = true

	res.Sections = Segment(text)
	for _, s := range res.Sections {
		if s.Importance == constants.ImportanceCritical && s.Confidence >= e.cfg.MinSectionConfidence {
			res.SemanticAnalysisSuccess = true
			break
		}
	}
	if !res.SemanticAnalysisSuccess {
		res.Warnings = append(res.Warnings, "no confident critical section found; downstream validation will be strict")
	}

	e.logger.Info("structure.extract.ok",
		"path", path,
		"fingerprint", fp,
		"strategy_hint", hint,
		"chars", len(text),
		"pages", res.Pages,
		"sections", len(res.Sections),
		"truncated", truncated,
		"semantic_ok", res.SemanticAnalysisSuccess,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// ProbeText satisfies viability.TextProber with a single-window read.
func (e *Extractor) ProbeText(ctx context.Context, path string) (int, error) {
	text, _, err := e.pullText(ctx, path, e.cfg.ProbeBytes)
	if err != nil {
		return 0, err
	}
	return countChars(text), nil
}

// pullText streams pdftotext output through the windowed accumulator.
// The process is torn down as soon as the cap is hit.
func (e *Extractor) pullText(ctx context.Context, path string, capBytes int) (string, bool, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, wait, err := e.runner.Stream(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", false, err
	}
	text, truncated, readErr := accumulate(out, e.cfg.WindowBytes, capBytes)
	_ = out.Close()
	waitErr := wait()
	if readErr != nil {
		return text, truncated, readErr
	}
	// When we cut the stream at the cap the command exits with a pipe error;
	// that is expected and not a failure.
	if waitErr != nil && !truncated {
		return text, truncated, waitErr
	}
	return text, truncated, nil
}

// countChars ignores whitespace so a page of form-feed noise does not pass
// the minimum-content gate.
func countChars(s string) int {
	n := 0
	for _, r := range s {
		if !isSpace(r) {
			n++
		}
	}
	return n
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
