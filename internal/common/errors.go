package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// Pipeline error taxonomy. Each pipeline run terminates with a validated
// record or with exactly one of these; stage-local noise (a pattern not
// matching, one classifier scoring low) is absorbed as confidence, not raised.
var (
	// ErrNotViable: document has no extractable text signal. Terminal, no retry.
	ErrNotViable = errors.New("document not viable for extraction")
	// ErrInsufficientText: text was extracted but below minimum length. Terminal.
	ErrInsufficientText = errors.New("insufficient text extracted")
	// ErrChunkExtractionFailed: a single chunk failed after retries.
	// Non-terminal for the document unless it was the only chunk.
	ErrChunkExtractionFailed = errors.New("chunk extraction failed")
	// ErrValidationRejected: the consolidated candidate failed the
	// no-fabrication predicate. Terminal, carries a typed sub-reason.
	ErrValidationRejected = errors.New("validation rejected")
	// ErrUpstreamUnavailable: blob store, database or extraction service is
	// unreachable. Terminal for this attempt; safe to retry the whole upload.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
