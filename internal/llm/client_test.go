//go:build !integration

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/internal/common"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(common.LLMConfig{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		Model:             "test-model",
		MaxRetries:        2,
		RetryBackoff:      time.Millisecond,
		RequestsPerMinute: 600000,
	}, nil)
}

func completion(content string) string {
	env := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	b, _ := json.Marshal(env)
	return string(b)
}

var chunkReq = ChunkRequest{
	ChunkText:            "ACME AIR SERVICES LLC\nGRAND TOTAL: 120.00 USD",
	ExpectedOutputFields: []string{"vendor_name", "total", "currency_code"},
	OutputFormat:         "json",
}

func TestExtractChunk_Success(t *testing.T) {
	var gotAuth atomic.Value
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		assert.Equal(t, "/chat/completions", r.URL.Path)
		fmt.Fprint(w, completion(`{"vendor_name": "ACME AIR SERVICES LLC", "total": "120.00", "currency_code": "usd", "confidence": 0.92}`))
	})

	fields, raw, err := c.ExtractChunk(context.Background(), chunkReq)

	require.NoError(t, err)
	assert.Equal(t, "ACME AIR SERVICES LLC", fields.VendorName)
	assert.Equal(t, "120.00", fields.Total)
	assert.Equal(t, "USD", fields.CurrencyCode)
	assert.InDelta(t, 0.92, fields.ModelConfidence, 1e-6)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "Bearer test-key", gotAuth.Load())
}

func TestExtractChunk_RecoversFencedResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completion("```json\n{\"vendor_name\": \"ACME\", \"total\": 120.5}\n```"))
	})

	fields, _, err := c.ExtractChunk(context.Background(), chunkReq)

	require.NoError(t, err)
	assert.Equal(t, "ACME", fields.VendorName)
	assert.Equal(t, "120.50", fields.Total)
}

func TestExtractChunk_RetriesServerErrorThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, completion(`{"vendor_name": "ACME"}`))
	})

	fields, _, err := c.ExtractChunk(context.Background(), chunkReq)

	require.NoError(t, err)
	assert.Equal(t, "ACME", fields.VendorName)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExtractChunk_ExhaustedRetriesWrapUpstreamUnavailable(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	})

	_, _, err := c.ExtractChunk(context.Background(), chunkReq)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrChunkExtractionFailed)
	assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
	assert.Equal(t, int32(3), calls.Load()) // initial attempt + 2 retries
}

func TestExtractChunk_UnrecoverablePayloadFails(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completion("I am unable to find any structured data in this text."))
	})

	_, _, err := c.ExtractChunk(context.Background(), chunkReq)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrChunkExtractionFailed)
	assert.False(t, errors.Is(err, common.ErrUpstreamUnavailable))
}

func TestExtractChunk_EmptyChoicesFails(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	})

	_, _, err := c.ExtractChunk(context.Background(), chunkReq)

	assert.ErrorIs(t, err, common.ErrChunkExtractionFailed)
}

func TestExtractChunk_CancellationStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		cancel()
		http.Error(w, "down", http.StatusInternalServerError)
	})

	_, _, err := c.ExtractChunk(ctx, chunkReq)

	assert.ErrorIs(t, err, context.Canceled)
}
