package structure

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/internal/common"
)

type fakeRunner struct {
	text    string
	waitErr error
	calls   int
}

func (f *fakeRunner) Stream(_ context.Context, _ string, _ ...string) (io.ReadCloser, func() error, error) {
	f.calls++
	return io.NopCloser(strings.NewReader(f.text)), func() error { return f.waitErr }, nil
}

func TestExtract_FullInvoice(t *testing.T) {
	e := NewExtractor(Config{}, nil).WithRunner(&fakeRunner{text: sampleInvoice})

	res, err := e.Extract(context.Background(), "/blobs/doc.pdf", constants.StrategyDirect)

	require.NoError(t, err)
	assert.True(t, res.TextExtractionSuccess)
	assert.True(t, res.SemanticAnalysisSuccess)
	assert.False(t, res.Truncated)
	assert.Equal(t, 1, res.Pages)
	assert.NotEmpty(t, res.Sections)
}

func TestExtract_PageCountFollowsFormFeeds(t *testing.T) {
	text := sampleInvoice + "\f" + sampleInvoice + "\f" + sampleInvoice
	e := NewExtractor(Config{}, nil).WithRunner(&fakeRunner{text: text})

	res, err := e.Extract(context.Background(), "/blobs/doc.pdf", constants.StrategyDirect)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Pages)
}

func TestExtract_InsufficientText(t *testing.T) {
	e := NewExtractor(Config{}, nil).WithRunner(&fakeRunner{text: "too short"})

	res, err := e.Extract(context.Background(), "/blobs/doc.pdf", constants.StrategyDirect)

	require.ErrorIs(t, err, common.ErrInsufficientText)
	assert.False(t, res.TextExtractionSuccess)
}

func TestExtract_WhitespaceDoesNotCountTowardMinimum(t *testing.T) {
	e := NewExtractor(Config{}, nil).WithRunner(&fakeRunner{text: strings.Repeat(" \n\f", 200)})

	_, err := e.Extract(context.Background(), "/blobs/doc.pdf", constants.StrategyDirect)

	require.ErrorIs(t, err, common.ErrInsufficientText)
}

func TestExtract_TruncatedStreamToleratesWaitError(t *testing.T) {
	// A stream cut at the cap kills the pipe; the resulting wait error must
	// not fail the extraction.
	big := strings.Repeat(sampleInvoice, 50)
	e := NewExtractor(Config{MaxTextBytes: 8 << 10, WindowBytes: 1 << 10}, nil).
		WithRunner(&fakeRunner{text: big, waitErr: errors.New("signal: broken pipe")})

	res, err := e.Extract(context.Background(), "/blobs/doc.pdf", constants.StrategyDirect)

	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.NotEmpty(t, res.Warnings)
	assert.LessOrEqual(t, len(res.Text), 8<<10)
}

func TestExtract_WaitErrorWithoutTruncationFails(t *testing.T) {
	e := NewExtractor(Config{}, nil).
		WithRunner(&fakeRunner{text: "partial", waitErr: errors.New("exit status 1")})

	_, err := e.Extract(context.Background(), "/blobs/doc.pdf", constants.StrategyDirect)

	require.ErrorIs(t, err, common.ErrInsufficientText)
}

func TestProbeText(t *testing.T) {
	r := &fakeRunner{text: sampleInvoice}
	e := NewExtractor(Config{ProbeBytes: 1 << 10}, nil).WithRunner(r)

	chars, err := e.ProbeText(context.Background(), "/blobs/doc.pdf")

	require.NoError(t, err)
	assert.Positive(t, chars)
	assert.Equal(t, 1, r.calls)
}

func TestProbeText_RespectsProbeBudget(t *testing.T) {
	// The probe budget bounds the read even though it is far below the
	// streaming window size.
	r := &fakeRunner{text: strings.Repeat("a", 100_000)}
	e := NewExtractor(Config{ProbeBytes: 4 << 10, WindowBytes: 64 << 10}, nil).WithRunner(r)

	chars, err := e.ProbeText(context.Background(), "/blobs/doc.pdf")

	require.NoError(t, err)
	assert.Equal(t, 4<<10, chars)
}
