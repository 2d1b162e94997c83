package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hangarline/fleetdocs/constants"
)

// Job is the smallest useful unit: one document path to ingest for a profile.
type Job struct {
	ProfileID   uuid.UUID
	Kind        constants.RecordKind
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
