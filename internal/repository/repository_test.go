//go:build !integration

package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/sqlite"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/gen/ent/enttest"
	"github.com/hangarline/fleetdocs/internal/consolidate"
)

// modernc registers itself as "sqlite"; ent's sqlite dialect dials "sqlite3".
// The shim bridges the two and switches foreign keys on per connection.
type sqlite3Driver struct{ *sqlite.Driver }

func (d sqlite3Driver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqlite3Driver{Driver: &sqlite.Driver{}})
}

type repos struct {
	profiles  ProfileRepository
	documents DocumentRepository
	records   RecordRepository
	jobs      ExtractJobRepository
	profileID uuid.UUID
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	client := enttest.Open(t, dialect.SQLite,
		fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	t.Cleanup(func() { _ = client.Close() })

	log := slog.Default()
	profiles := NewProfileRepository(client, log)
	p, err := profiles.CreateProfile(context.Background(), &Profile{
		Name:            "Hangar Line Ops",
		Email:           "ops@hangarline.test",
		DefaultCurrency: "USD",
	})
	require.NoError(t, err)

	return repos{
		profiles:  profiles,
		documents: NewDocumentRepository(client, log),
		records:   NewRecordRepository(client, log),
		jobs:      NewExtractJobRepository(client, log),
		profileID: p.ID,
	}
}

func docRequest(profileID uuid.UUID, hash byte) *CreateDocumentRequest {
	h := make([]byte, 32)
	h[0] = hash
	return &CreateDocumentRequest{
		ProfileID:  profileID,
		Filename:   "invoice.pdf",
		FileExt:    ".pdf",
		FileSize:   2048,
		Hash:       h,
		UploadedAt: time.Now().UTC(),
	}
}

func TestProfileRepository_CreateListExists(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	ok, err := r.profiles.Exists(ctx, r.profileID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.profiles.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := r.profiles.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Hangar Line Ops", all[0].Name)
}

func TestDocumentRepository_UpsertByHashDeduplicates(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	first, dup, err := r.documents.UpsertByHash(ctx, docRequest(r.profileID, 0xAA))
	require.NoError(t, err)
	assert.False(t, dup)

	second, dup, err := r.documents.UpsertByHash(ctx, docRequest(r.profileID, 0xAA))
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, first.ID, second.ID)

	other, dup, err := r.documents.UpsertByHash(ctx, docRequest(r.profileID, 0xBB))
	require.NoError(t, err)
	assert.False(t, dup)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestDocumentRepository_Backfills(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	doc, _, err := r.documents.UpsertByHash(ctx, docRequest(r.profileID, 0x01))
	require.NoError(t, err)

	require.NoError(t, r.documents.SetStorageURL(ctx, doc.ID, "file:///blobs/x.pdf"))
	require.NoError(t, r.documents.SetPageCount(ctx, doc.ID, 7))

	got, err := r.documents.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "file:///blobs/x.pdf", got.StorageURL)
	assert.Equal(t, 7, got.PageCount)
}

func validatedMaintenance() *consolidate.ValidatedRecord {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return &consolidate.ValidatedRecord{
		Kind:         constants.KindMaintenance,
		Fingerprint:  "abc123",
		VendorName:   "ACME AIR SERVICES LLC",
		InvoiceDate:  &d,
		CurrencyCode: "USD",
		Total:        1250.40,
		Breakdown:    consolidate.Breakdown{Labor: 800, Parts: 425.40, Tax: 25},
		WorkOrder:    "WO-4711",
		Flags:        []string{"partial_extraction"},
		Source:       consolidate.Source{OCRExtracted: true, Confidence: 0.82},
		NeedsReview:  true,
	}
}

func TestRecordRepository_MaintenanceRoundTrip(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	doc, _, err := r.documents.UpsertByHash(ctx, docRequest(r.profileID, 0x02))
	require.NoError(t, err)

	id, err := r.records.CreateFromValidated(ctx, &CreateRecordRequest{
		ProfileID:  r.profileID,
		DocumentID: doc.ID,
		Record:     validatedMaintenance(),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := r.records.GetMaintenanceByDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "ACME AIR SERVICES LLC", got.VendorName)
	assert.InDelta(t, 1250.40, got.Total, 1e-9)
	assert.InDelta(t, 800, got.LaborTotal, 1e-9)
	assert.Equal(t, "WO-4711", got.WorkOrder)
	assert.True(t, got.ExtractedByOCR)
	assert.True(t, got.NeedsReview)
	require.NotNil(t, got.InvoiceDate)
	assert.Equal(t, "2026-03-14", got.InvoiceDate.Format("2006-01-02"))
	assert.Contains(t, got.Flags, "partial_extraction")
}

func TestRecordRepository_DeleteByDocument(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	doc, _, err := r.documents.UpsertByHash(ctx, docRequest(r.profileID, 0x03))
	require.NoError(t, err)

	_, err = r.records.CreateFromValidated(ctx, &CreateRecordRequest{
		ProfileID:  r.profileID,
		DocumentID: doc.ID,
		Record:     validatedMaintenance(),
	})
	require.NoError(t, err)

	n, err := r.records.DeleteByDocument(ctx, constants.KindMaintenance, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = r.records.GetMaintenanceByDocument(ctx, doc.ID)
	assert.Error(t, err)
}

func TestExtractJobRepository_LifecycleTransitions(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	doc, _, err := r.documents.UpsertByHash(ctx, docRequest(r.profileID, 0x04))
	require.NoError(t, err)

	job, err := r.jobs.Start(ctx, doc.ID, r.profileID, constants.KindMaintenance)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusRunning), job.Status)

	require.NoError(t, r.jobs.MarkTextOK(ctx, job.ID, constants.StrategyDirect))
	require.NoError(t, r.jobs.FinishSuccess(ctx, job.ID, 4, 1))

	job2, err := r.jobs.Start(ctx, doc.ID, r.profileID, constants.KindMaintenance)
	require.NoError(t, err)
	require.NoError(t, r.jobs.FinishRejected(ctx, job2.ID, "no_financial_data"))

	job3, err := r.jobs.Start(ctx, doc.ID, r.profileID, constants.KindMaintenance)
	require.NoError(t, err)
	require.NoError(t, r.jobs.FinishFailure(ctx, job3.ID, "extraction service status 503"))
}
