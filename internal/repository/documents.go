package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hangarline/fleetdocs/gen/ent"
	entdoc "github.com/hangarline/fleetdocs/gen/ent/document"
)

// CreateDocumentRequest wraps parameters for registering an uploaded document.
type CreateDocumentRequest struct {
	ProfileID  uuid.UUID
	Filename   string
	FileExt    string
	FileSize   int
	PageCount  int
	Hash       []byte
	StorageURL string
	UploadedAt time.Time
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.Document, error)
	Create(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, error)
	UpsertByHash(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, bool, error)
	SetStorageURL(ctx context.Context, id uuid.UUID, url string) error
	SetPageCount(ctx context.Context, id uuid.UUID, pages int) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.Document, error) {
	row, err := r.ent.Document.Query().
		Where(
			entdoc.ProfileID(profileID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) Create(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, error) {
	row, err := r.ent.Document.Create().
		SetProfileID(req.ProfileID).
		SetFilename(req.Filename).
		SetFileExt(req.FileExt).
		SetFileSize(req.FileSize).
		SetPageCount(req.PageCount).
		SetContentHash(req.Hash).
		SetStorageURL(req.StorageURL).
		SetUploadedAt(req.UploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "profile_id", req.ProfileID, "filename", req.Filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the profile already uploaded this
// exact content, otherwise inserts. The bool reports whether it was a duplicate.
func (r *documentRepo) UpsertByHash(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, req.ProfileID, req.Hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, req)
	if err != nil {
		// Concurrent upload of the same content can lose the insert race on the
		// unique (profile_id, content_hash) index. Re-read before giving up.
		if existing, qerr := r.GetByProfileAndHash(ctx, req.ProfileID, req.Hash); qerr == nil {
			return existing, true, nil
		}
		r.logger.Error("failed to upsert document by hash", "profile_id", req.ProfileID, "filename", req.Filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentRepo) SetStorageURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.ent.Document.UpdateOneID(id).SetStorageURL(url).Exec(ctx)
}

func (r *documentRepo) SetPageCount(ctx context.Context, id uuid.UUID, pages int) error {
	return r.ent.Document.UpdateOneID(id).SetPageCount(pages).Exec(ctx)
}
