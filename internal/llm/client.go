package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hangarline/fleetdocs/internal/common"
)

// Client implements Extractor against an OpenAI-compatible chat/completions
// endpoint. Calls are rate limited client-side and retried a bounded number
// of times on timeouts, 5xx responses, and unrecoverable payloads.
type Client struct {
	cfg     common.LLMConfig
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

func NewClient(cfg common.LLMConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 2 * time.Second
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), rpm/6+1),
		log:     logger,
	}
}

func (c *Client) ExtractChunk(ctx context.Context, req ChunkRequest) (ChunkFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"chunk_bytes", len(req.ChunkText),
		"expected_fields", len(req.ExpectedOutputFields),
	)

	schema := BuildChunkJSONSchema(req.ExpectedOutputFields)
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(req)},
			{"role": "user", "content": buildUserPrompt(req)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	var lastErr error
	var lastRaw []byte
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.cfg.RetryBackoff * time.Duration(attempt)
			c.log.Warn("llm.extract.retry", "req_id", rid, "attempt", attempt, "backoff_ms", backoff.Milliseconds(), "error", lastErr)
			select {
			case <-ctx.Done():
				return ChunkFields{}, lastRaw, ctx.Err()
			case <-time.After(backoff):
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return ChunkFields{}, lastRaw, err
		}

		fields, raw, err := c.tryOnce(ctx, rid, endpoint, body, schema, req)
		if err == nil {
			c.log.Info("llm.extract.ok",
				"req_id", rid,
				"vendor", fields.VendorName,
				"total", fields.Total,
				"currency", fields.CurrencyCode,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return fields, raw, nil
		}
		lastErr, lastRaw = err, raw
		if ctx.Err() != nil {
			return ChunkFields{}, lastRaw, ctx.Err()
		}
	}

	c.log.Error("llm.extract.failed",
		"req_id", rid,
		"attempts", c.cfg.MaxRetries+1,
		"error", lastErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ChunkFields{}, lastRaw, fmt.Errorf("%w: %w", common.ErrChunkExtractionFailed, lastErr)
}

func (c *Client) tryOnce(ctx context.Context, rid, endpoint string, body map[string]any, schema map[string]any, req ChunkRequest) (ChunkFields, []byte, error) {
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return ChunkFields{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return ChunkFields{}, raw, fmt.Errorf("decode completion envelope: %w", err)
	}
	if len(cc.Choices) == 0 {
		return ChunkFields{}, raw, fmt.Errorf("no choices in completion response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	recovered, strategy, err := RecoverJSONObject(content)
	if err != nil {
		return ChunkFields{}, content, fmt.Errorf("malformed response: %w", err)
	}
	if strategy != "" {
		c.log.Warn("llm.extract.recovered", "req_id", rid, "strategy", strategy)
	}

	cleaned, _, err := NormalizeFields(recovered, req.ExpectedOutputFields, c.log)
	if err != nil {
		return ChunkFields{}, recovered, err
	}
	if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		return ChunkFields{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var out ChunkFields
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return ChunkFields{}, cleaned, fmt.Errorf("unmarshal fields: %w", err)
	}
	return out, cleaned, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("llm.http.response_body_close_error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: status %d", common.ErrUpstreamUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("extraction service status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}
	return raw, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
