package viability

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/hangarline/fleetdocs/internal/common"
)

// Metadata is what the classifier is allowed to see: document shape only,
// never content. Collecting it is the one I/O step before Stage 0.
type Metadata struct {
	PageCount          int
	SizeBytes          int
	HasExtractableText bool
}

// TextProber answers whether a stored document yields any recoverable
// characters. The structure extractor implements it with a single-window
// probe so collection stays cheap.
type TextProber interface {
	ProbeText(ctx context.Context, path string) (chars int, err error)
}

// Collector gathers Metadata for a stored PDF.
type Collector struct {
	prober TextProber
	logger *slog.Logger
}

func NewCollector(prober TextProber, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{prober: prober, logger: logger}
}

// Collect parses the PDF header for a page count and probes for text.
// A document pdfcpu cannot open at all is reported as not viable upstream
// via the zero page count.
func (c *Collector) Collect(ctx context.Context, raw []byte, storedPath string) (Metadata, error) {
	meta := Metadata{SizeBytes: len(raw)}

	pages, err := api.PageCount(bytes.NewReader(raw), model.NewDefaultConfiguration())
	if err != nil {
		c.logger.Warn("viability.metadata.page_count_failed", "error", err)
		return meta, fmt.Errorf("%w: unreadable pdf: %v", common.ErrNotViable, err)
	}
	meta.PageCount = pages

	chars, err := c.prober.ProbeText(ctx, storedPath)
	if err != nil {
		// Probe failure means no recoverable characters, not a pipeline error;
		// the classifier turns this into a not-viable outcome.
		c.logger.Warn("viability.metadata.probe_failed", "path", storedPath, "error", err)
		meta.HasExtractableText = false
		return meta, nil
	}
	meta.HasExtractableText = chars > 0

	c.logger.Debug("viability.metadata.collected",
		"pages", meta.PageCount,
		"size_bytes", meta.SizeBytes,
		"has_text", meta.HasExtractableText,
	)
	return meta, nil
}
