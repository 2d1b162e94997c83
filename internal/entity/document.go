package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents one uploaded invoice file for data transfer between
// layers. The content hash is the idempotency key of the whole pipeline.
type Document struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	PageCount   int       `json:"page_count"`
	StorageURL  string    `json:"storage_url"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
