//go:build !integration

package dedup

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/gen/ent"
	"github.com/hangarline/fleetdocs/internal/entity"
	"github.com/hangarline/fleetdocs/internal/repository"
)

type fakeDocStore struct {
	doc     *ent.Document
	dup     bool
	lastReq *repository.CreateDocumentRequest
}

func (f *fakeDocStore) UpsertByHash(_ context.Context, req *repository.CreateDocumentRequest) (*ent.Document, bool, error) {
	f.lastReq = req
	return f.doc, f.dup, nil
}

type fakeRecordStore struct {
	maintenance  *entity.MaintenanceRecord
	expense      *entity.ExpenseRecord
	deletedKinds []constants.RecordKind
}

func (f *fakeRecordStore) GetMaintenanceByDocument(context.Context, uuid.UUID) (*entity.MaintenanceRecord, error) {
	if f.maintenance == nil {
		return nil, &ent.NotFoundError{}
	}
	return f.maintenance, nil
}

func (f *fakeRecordStore) GetExpenseByDocument(context.Context, uuid.UUID) (*entity.ExpenseRecord, error) {
	if f.expense == nil {
		return nil, &ent.NotFoundError{}
	}
	return f.expense, nil
}

func (f *fakeRecordStore) DeleteByDocument(_ context.Context, kind constants.RecordKind, _ uuid.UUID) (int, error) {
	f.deletedKinds = append(f.deletedKinds, kind)
	return 1, nil
}

func TestFingerprint_StableHexDigest(t *testing.T) {
	a := Fingerprint([]byte("invoice body"))
	b := Fingerprint([]byte("invoice body"))
	c := Fingerprint([]byte("different body"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestCheck_FreshUploadRunsPipeline(t *testing.T) {
	docID := uuid.New()
	docs := &fakeDocStore{doc: &ent.Document{ID: docID}, dup: false}
	records := &fakeRecordStore{}
	checker := NewChecker(docs, records, nil)

	res, err := checker.Check(context.Background(), uuid.New(), constants.KindMaintenance, "inv.pdf", ".pdf", []byte("raw"))

	require.NoError(t, err)
	assert.False(t, res.Deduplicated)
	assert.Nil(t, res.Cached)
	assert.Equal(t, docID, res.Document.ID)
	require.NotNil(t, docs.lastReq)
	assert.Equal(t, "inv.pdf", docs.lastReq.Filename)
	assert.Len(t, docs.lastReq.Hash, 32)
}

func TestCheck_DuplicateWithValidRecordServesCache(t *testing.T) {
	recID := uuid.New()
	docs := &fakeDocStore{doc: &ent.Document{ID: uuid.New()}, dup: true}
	records := &fakeRecordStore{maintenance: &entity.MaintenanceRecord{
		ID:           recID,
		VendorName:   "ACME AIR SERVICES LLC",
		Total:        1250.40,
		CurrencyCode: "USD",
		NeedsReview:  true,
	}}
	checker := NewChecker(docs, records, nil)

	res, err := checker.Check(context.Background(), uuid.New(), constants.KindMaintenance, "inv.pdf", ".pdf", []byte("raw"))

	require.NoError(t, err)
	assert.True(t, res.Deduplicated)
	require.NotNil(t, res.Cached)
	assert.Equal(t, recID, res.Cached.RecordID)
	assert.Equal(t, constants.KindMaintenance, res.Cached.Kind)
	assert.True(t, res.Cached.NeedsReview)
	assert.Empty(t, records.deletedKinds)
}

func TestCheck_DuplicateServedAcrossRecordKinds(t *testing.T) {
	// The first upload of these bytes was processed as an expense; asking
	// for a maintenance record later must still serve the existing one
	// instead of re-running extraction.
	recID := uuid.New()
	docs := &fakeDocStore{doc: &ent.Document{ID: uuid.New()}, dup: true}
	records := &fakeRecordStore{expense: &entity.ExpenseRecord{
		ID:           recID,
		VendorName:   "Hangar Line Fuel Stop",
		Total:        310.75,
		CurrencyCode: "USD",
	}}
	checker := NewChecker(docs, records, nil)

	res, err := checker.Check(context.Background(), uuid.New(), constants.KindMaintenance, "fuel.pdf", ".pdf", []byte("raw"))

	require.NoError(t, err)
	assert.True(t, res.Deduplicated)
	require.NotNil(t, res.Cached)
	assert.Equal(t, recID, res.Cached.RecordID)
	assert.Equal(t, constants.KindExpense, res.Cached.Kind)
	assert.Empty(t, records.deletedKinds)
}

func TestCheck_CorruptCachedRecordDeletedAndReprocessed(t *testing.T) {
	docs := &fakeDocStore{doc: &ent.Document{ID: uuid.New()}, dup: true}
	records := &fakeRecordStore{maintenance: &entity.MaintenanceRecord{
		ID:           uuid.New(),
		VendorName:   "Unknown Vendor",
		Total:        1250.40,
		CurrencyCode: "USD",
	}}
	checker := NewChecker(docs, records, nil)

	res, err := checker.Check(context.Background(), uuid.New(), constants.KindMaintenance, "inv.pdf", ".pdf", []byte("raw"))

	require.NoError(t, err)
	assert.True(t, res.Deduplicated)
	assert.Nil(t, res.Cached)
	// corrupt-cache cleanup sweeps both record tables
	assert.ElementsMatch(t, []constants.RecordKind{constants.KindMaintenance, constants.KindExpense}, records.deletedKinds)
}

func TestCheck_DuplicateWithoutRecordReprocesses(t *testing.T) {
	docs := &fakeDocStore{doc: &ent.Document{ID: uuid.New()}, dup: true}
	records := &fakeRecordStore{}
	checker := NewChecker(docs, records, nil)

	res, err := checker.Check(context.Background(), uuid.New(), constants.KindExpense, "fuel.pdf", ".pdf", []byte("raw"))

	require.NoError(t, err)
	assert.True(t, res.Deduplicated)
	assert.Nil(t, res.Cached)
	assert.Empty(t, records.deletedKinds)
}
