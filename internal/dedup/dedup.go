package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/gen/ent"
	"github.com/hangarline/fleetdocs/internal/consolidate"
	"github.com/hangarline/fleetdocs/internal/entity"
	"github.com/hangarline/fleetdocs/internal/repository"
)

// DocumentStore is the slice of the document repository dedup needs.
type DocumentStore interface {
	UpsertByHash(ctx context.Context, req *repository.CreateDocumentRequest) (*ent.Document, bool, error)
}

// RecordStore is the slice of the record repository dedup needs to decide
// whether a cached record can be served instead of reprocessing.
type RecordStore interface {
	GetMaintenanceByDocument(ctx context.Context, documentID uuid.UUID) (*entity.MaintenanceRecord, error)
	GetExpenseByDocument(ctx context.Context, documentID uuid.UUID) (*entity.ExpenseRecord, error)
	DeleteByDocument(ctx context.Context, kind constants.RecordKind, documentID uuid.UUID) (int, error)
}

// CachedRecord is a previously validated record served straight from storage.
type CachedRecord struct {
	RecordID     uuid.UUID
	Kind         constants.RecordKind
	VendorName   string
	Total        float64
	CurrencyCode string
	NeedsReview  bool
}

// Result is the outcome of fingerprinting an upload. When Cached is non-nil
// the pipeline is skipped entirely.
type Result struct {
	Document     *ent.Document
	Fingerprint  string
	Deduplicated bool
	Cached       *CachedRecord
}

type Checker struct {
	docs    DocumentStore
	records RecordStore
	log     *slog.Logger
}

func NewChecker(docs DocumentStore, records RecordStore, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{docs: docs, records: records, log: logger}
}

// Fingerprint returns the hex sha256 digest of the raw content.
func Fingerprint(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Check registers the upload under its content hash and reports whether a
// valid record already exists for it. A cached record that fails the validity
// predicate is deleted so the document gets reprocessed from scratch.
//
// There is deliberately no cross-process lock here: two concurrent uploads of
// the same content may both run the pipeline, and the unique index on
// (profile_id, content_hash) keeps the document row single.
func (c *Checker) Check(ctx context.Context, profileID uuid.UUID, kind constants.RecordKind, filename, ext string, raw []byte) (*Result, error) {
	sum := sha256.Sum256(raw)
	fingerprint := hex.EncodeToString(sum[:])

	doc, dup, err := c.docs.UpsertByHash(ctx, &repository.CreateDocumentRequest{
		ProfileID:  profileID,
		Filename:   filename,
		FileExt:    ext,
		FileSize:   len(raw),
		Hash:       sum[:],
		UploadedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Document: doc, Fingerprint: fingerprint, Deduplicated: dup}
	if !dup {
		return res, nil
	}

	cached := c.lookupCached(ctx, doc.ID)
	if cached == nil {
		// Known content but no finished record: an earlier run failed or was
		// rejected. Reprocess.
		return res, nil
	}

	if consolidate.CachedRecordValid(cached.VendorName, cached.Total, cached.CurrencyCode) {
		c.log.Info("dedup.cache_hit",
			"document_id", doc.ID,
			"fingerprint", fingerprint,
			"record_id", cached.RecordID,
			"cached_kind", cached.Kind,
			"requested_kind", kind,
		)
		res.Cached = cached
		return res, nil
	}

	c.log.Warn("dedup.cache_corrupt", "document_id", doc.ID, "fingerprint", fingerprint, "vendor", cached.VendorName)
	// Sweep both tables: the corrupt record's kind may not be the requested
	// one, and a fingerprint must map to at most one record either way.
	for _, k := range []constants.RecordKind{constants.KindMaintenance, constants.KindExpense} {
		if _, err := c.records.DeleteByDocument(ctx, k, doc.ID); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// lookupCached searches both record tables. A document row is unique per
// (profile, fingerprint), so the existing record may carry either kind
// regardless of what this upload asked for.
func (c *Checker) lookupCached(ctx context.Context, documentID uuid.UUID) *CachedRecord {
	if rec, err := c.records.GetMaintenanceByDocument(ctx, documentID); err == nil {
		return &CachedRecord{
			RecordID:     rec.ID,
			Kind:         constants.KindMaintenance,
			VendorName:   rec.VendorName,
			Total:        rec.Total,
			CurrencyCode: rec.CurrencyCode,
			NeedsReview:  rec.NeedsReview,
		}
	}
	if rec, err := c.records.GetExpenseByDocument(ctx, documentID); err == nil {
		return &CachedRecord{
			RecordID:     rec.ID,
			Kind:         constants.KindExpense,
			VendorName:   rec.VendorName,
			Total:        rec.Total,
			CurrencyCode: rec.CurrencyCode,
			NeedsReview:  rec.NeedsReview,
		}
	}
	return nil
}
