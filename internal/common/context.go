package common

import "context"

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID   contextKey = "request_id"
	ContextKeyFingerprint contextKey = "fingerprint"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithFingerprint adds the document fingerprint (hex) to the context so
// stage logs can be correlated back to one physical document.
func WithFingerprint(ctx context.Context, hexHash string) context.Context {
	return context.WithValue(ctx, ContextKeyFingerprint, hexHash)
}

// FingerprintFromContext extracts the document fingerprint from context
func FingerprintFromContext(ctx context.Context) string {
	if fp, ok := ctx.Value(ContextKeyFingerprint).(string); ok {
		return fp
	}
	return ""
}
