package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hangarline/fleetdocs/constants"
)

// ExtractJob records one pipeline run over a document, whatever the outcome.
type ExtractJob struct {
	ID           uuid.UUID            `json:"id"`
	ProfileID    uuid.UUID            `json:"profile_id"`
	DocumentID   uuid.UUID            `json:"document_id"`
	Kind         constants.RecordKind `json:"kind"`
	Status       constants.JobStatus  `json:"status"`
	Strategy     constants.Strategy   `json:"strategy,omitempty"`
	ChunksTotal  int                  `json:"chunks_total"`
	ChunksFailed int                  `json:"chunks_failed"`
	RejectReason string               `json:"reject_reason,omitempty"`
	Error        string               `json:"error,omitempty"`
	StartedAt    time.Time            `json:"started_at"`
	FinishedAt   *time.Time           `json:"finished_at,omitempty"`
}
