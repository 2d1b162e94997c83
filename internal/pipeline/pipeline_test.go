//go:build !integration

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/gen/ent"
	"github.com/hangarline/fleetdocs/internal/common"
	"github.com/hangarline/fleetdocs/internal/dedup"
	"github.com/hangarline/fleetdocs/internal/entity"
	"github.com/hangarline/fleetdocs/internal/llm"
	"github.com/hangarline/fleetdocs/internal/repository"
	"github.com/hangarline/fleetdocs/internal/structure"
	"github.com/hangarline/fleetdocs/internal/viability"
)

// --- collaborator fakes -----------------------------------------------------

type fakeDocStore struct {
	doc *ent.Document
	dup bool
}

func (f *fakeDocStore) UpsertByHash(context.Context, *repository.CreateDocumentRequest) (*ent.Document, bool, error) {
	return f.doc, f.dup, nil
}

type fakeRecordStore struct {
	maintenance *entity.MaintenanceRecord
	expense     *entity.ExpenseRecord
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

func (f *fakeRecordStore) DeleteByDocument(context.Context, constants.RecordKind, uuid.UUID) (int, error) {
	return 0, nil
}

type fakeBlob struct {
	puts []string
}

func (f *fakeBlob) Put(_ context.Context, path string, _ []byte) (string, error) {
	f.puts = append(f.puts, path)
	return "file:///blobs/" + path, nil
}

func (f *fakeBlob) LocalPath(path string) string { return "/blobs/" + path }

type fakeCollector struct {
	meta viability.Metadata
}

func (f *fakeCollector) Collect(context.Context, []byte, string) (viability.Metadata, error) {
	return f.meta, nil
}

type fakeStructurer struct {
	res structure.ExtractResult
	err error
}

func (f *fakeStructurer) Extract(context.Context, string, constants.Strategy) (structure.ExtractResult, error) {
	return f.res, f.err
}

type fakeExtractor struct {
	mu    sync.Mutex
	calls int
	fn    func(req llm.ChunkRequest) (llm.ChunkFields, error)
}

func (f *fakeExtractor) ExtractChunk(_ context.Context, req llm.ChunkRequest) (llm.ChunkFields, []byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	fields, err := f.fn(req)
	return fields, nil, err
}

type fakeRecordWriter struct {
	id   uuid.UUID
	last *repository.CreateRecordRequest
}

func (f *fakeRecordWriter) CreateFromValidated(_ context.Context, req *repository.CreateRecordRequest) (uuid.UUID, error) {
	f.last = req
	return f.id, nil
}

type fakeDocUpdater struct {
	storageURL string
	pageCount  int
}

func (f *fakeDocUpdater) SetStorageURL(_ context.Context, _ uuid.UUID, url string) error {
	f.storageURL = url
	return nil
}

func (f *fakeDocUpdater) SetPageCount(_ context.Context, _ uuid.UUID, pages int) error {
	f.pageCount = pages
	return nil
}

type fakeJobs struct {
	jobID       uuid.UUID
	started     bool
	textOK      bool
	successWith [2]int
	succeeded   bool
	rejected    string
	failed      string
}

func (f *fakeJobs) Start(context.Context, uuid.UUID, uuid.UUID, constants.RecordKind) (*ent.ExtractJob, error) {
	f.started = true
	f.jobID = uuid.New()
	return &ent.ExtractJob{ID: f.jobID}, nil
}

func (f *fakeJobs) MarkTextOK(_ context.Context, _ uuid.UUID, _ constants.Strategy) error {
	f.textOK = true
	return nil
}

func (f *fakeJobs) FinishSuccess(_ context.Context, _ uuid.UUID, total, failed int) error {
	f.succeeded = true
	f.successWith = [2]int{total, failed}
	return nil
}

func (f *fakeJobs) FinishRejected(_ context.Context, _ uuid.UUID, reason string) error {
	f.rejected = reason
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.failed = message
	return nil
}

// --- harness ----------------------------------------------------------------

type harness struct {
	proc      *Processor
	blob      *fakeBlob
	docs      *fakeDocUpdater
	jobs      *fakeJobs
	records   *fakeRecordWriter
	extractor *fakeExtractor
	recordID  uuid.UUID
}

func testConfig() common.PipelineConfig {
	return common.PipelineConfig{
		DirectPageThreshold: 8,
		ChunkTokenBudget:    600,
		SequentialMaxChunks: 3,
		MaxConcurrentChunks: 3,
		MinRecordConfidence: 0.60,
		ReconcileTolerance:  0.02,
	}
}

func invoiceSections() []structure.Section {
	return []structure.Section{
		{
			ID: "s1", Title: "Header", Content: "ACME AIR SERVICES LLC\nInvoice #4711",
			PageStart: 1, PageEnd: 1,
			Type: constants.SectionHeader, Confidence: 0.9, Importance: constants.ImportanceNormal,
		},
		{
			ID: "s2", Title: "Totals", Content: "GRAND TOTAL: 1250.40 USD",
			PageStart: 2, PageEnd: 2,
			Type: constants.SectionTotals, Confidence: 0.95, Importance: constants.ImportanceCritical,
		},
	}
}

func goodFields(req llm.ChunkRequest) (llm.ChunkFields, error) {
	return llm.ChunkFields{
		VendorName:      "ACME AIR SERVICES LLC",
		InvoiceDate:     "2026-03-14",
		CurrencyCode:    "USD",
		Total:           "1250.40",
		ModelConfidence: 0.9,
	}, nil
}

func newHarness(t *testing.T, docStore *fakeDocStore, recStore *fakeRecordStore, coll *fakeCollector, str *fakeStructurer, ext *fakeExtractor) *harness {
	t.Helper()
	h := &harness{
		blob:      &fakeBlob{},
		docs:      &fakeDocUpdater{},
		jobs:      &fakeJobs{},
		extractor: ext,
		recordID:  uuid.New(),
	}
	h.records = &fakeRecordWriter{id: h.recordID}
	h.proc = NewProcessor(
		testConfig(),
		dedup.NewChecker(docStore, recStore, nil),
		h.blob,
		coll,
		str,
		ext,
		h.records,
		h.docs,
		h.jobs,
		nil,
	)
	return h
}

// --- tests ------------------------------------------------------------------

func TestProcessUpload_DirectSuccess(t *testing.T) {
	docID := uuid.New()
	profileID := uuid.New()
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: docID}},
		&fakeRecordStore{},
		&fakeCollector{meta: viability.Metadata{PageCount: 2, SizeBytes: 40 << 10, HasExtractableText: true}},
		&fakeStructurer{res: structure.ExtractResult{Sections: invoiceSections(), Pages: 2, TextExtractionSuccess: true}},
		&fakeExtractor{fn: goodFields},
	)

	out, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: profileID,
		Kind:      constants.KindMaintenance,
		Filename:  "invoice.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.NoError(t, err)
	assert.Equal(t, docID, out.DocumentID)
	assert.Equal(t, h.recordID, out.RecordID)
	assert.Equal(t, uuid.Nil, out.CachedRecordID)
	assert.Equal(t, constants.StrategyDirect, out.Strategy)
	assert.Equal(t, constants.PlanSequential, out.PlanStrategy)
	assert.Equal(t, 2, out.ChunksTotal)
	assert.Zero(t, out.ChunksFailed)

	require.NotNil(t, out.Record)
	assert.Equal(t, "ACME AIR SERVICES LLC", out.Record.VendorName)
	assert.InDelta(t, 1250.40, out.Record.Total, 1e-9)

	// stored under the content hash before extraction ran
	require.Len(t, h.blob.puts, 1)
	assert.Equal(t, fmt.Sprintf("profiles/%s/%s.pdf", profileID, out.Fingerprint), h.blob.puts[0])
	assert.Equal(t, "file:///blobs/"+h.blob.puts[0], h.docs.storageURL)
	assert.Equal(t, 2, h.docs.pageCount)

	assert.True(t, h.jobs.started)
	assert.True(t, h.jobs.textOK)
	assert.True(t, h.jobs.succeeded)
	assert.Equal(t, [2]int{2, 0}, h.jobs.successWith)

	require.NotNil(t, h.records.last)
	assert.Equal(t, profileID, h.records.last.ProfileID)
	assert.Equal(t, docID, h.records.last.DocumentID)
}

func TestProcessUpload_DuplicateServedFromCache(t *testing.T) {
	cachedID := uuid.New()
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}, dup: true},
		&fakeRecordStore{maintenance: &entity.MaintenanceRecord{
			ID: cachedID, VendorName: "ACME", Total: 99.50, CurrencyCode: "USD",
		}},
		&fakeCollector{},
		&fakeStructurer{},
		&fakeExtractor{fn: goodFields},
	)

	out, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "invoice.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.NoError(t, err)
	assert.True(t, out.Deduplicated)
	assert.Equal(t, cachedID, out.CachedRecordID)
	assert.Equal(t, constants.KindMaintenance, out.CachedKind)
	assert.Equal(t, uuid.Nil, out.RecordID)

	// the pipeline never ran
	assert.Empty(t, h.blob.puts)
	assert.False(t, h.jobs.started)
	assert.Zero(t, h.extractor.calls)
}

func TestProcessUpload_DuplicateOfOtherKindServedFromCache(t *testing.T) {
	cachedID := uuid.New()
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}, dup: true},
		&fakeRecordStore{expense: &entity.ExpenseRecord{
			ID: cachedID, VendorName: "Hangar Line Fuel Stop", Total: 310.75, CurrencyCode: "USD",
		}},
		&fakeCollector{},
		&fakeStructurer{},
		&fakeExtractor{fn: goodFields},
	)

	out, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "fuel.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.NoError(t, err)
	assert.Equal(t, cachedID, out.CachedRecordID)
	assert.Equal(t, constants.KindExpense, out.CachedKind)
	assert.Zero(t, h.extractor.calls)
	assert.False(t, h.jobs.started)
}

func TestProcessUpload_UnsupportedExtension(t *testing.T) {
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}},
		&fakeRecordStore{},
		&fakeCollector{},
		&fakeStructurer{},
		&fakeExtractor{fn: goodFields},
	)

	_, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "invoice.docx",
		Raw:       []byte("x"),
	})

	require.Error(t, err)
	assert.Empty(t, h.blob.puts)
}

func TestProcessUpload_NotViableFailsJob(t *testing.T) {
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}},
		&fakeRecordStore{},
		&fakeCollector{meta: viability.Metadata{PageCount: 3, HasExtractableText: false}},
		&fakeStructurer{},
		&fakeExtractor{fn: goodFields},
	)

	_, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "scan.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.ErrorIs(t, err, common.ErrNotViable)
	assert.NotEmpty(t, h.jobs.failed)
	assert.Zero(t, h.extractor.calls)
}

func TestProcessUpload_InsufficientTextRejectsJob(t *testing.T) {
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}},
		&fakeRecordStore{},
		&fakeCollector{meta: viability.Metadata{PageCount: 1, HasExtractableText: true}},
		&fakeStructurer{err: fmt.Errorf("%w: 12 chars", common.ErrInsufficientText)},
		&fakeExtractor{fn: goodFields},
	)

	_, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "thin.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.ErrorIs(t, err, common.ErrInsufficientText)
	assert.Equal(t, "insufficient_text", h.jobs.rejected)
	assert.Empty(t, h.jobs.failed)
}

func TestProcessUpload_AllChunksFailedIsRejected(t *testing.T) {
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}},
		&fakeRecordStore{},
		&fakeCollector{meta: viability.Metadata{PageCount: 2, HasExtractableText: true}},
		&fakeStructurer{res: structure.ExtractResult{Sections: invoiceSections(), Pages: 2, TextExtractionSuccess: true}},
		&fakeExtractor{fn: func(llm.ChunkRequest) (llm.ChunkFields, error) {
			return llm.ChunkFields{}, fmt.Errorf("%w: malformed response", common.ErrChunkExtractionFailed)
		}},
	)

	out, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "invoice.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.ErrorIs(t, err, common.ErrValidationRejected)
	assert.Equal(t, "malformed_llm_response", h.jobs.rejected)
	assert.Equal(t, 2, out.ChunksFailed)
	assert.Equal(t, uuid.Nil, out.RecordID)
	assert.Nil(t, h.records.last)
}

func TestProcessUpload_PartialChunkFailureStillPersists(t *testing.T) {
	ext := &fakeExtractor{}
	ext.fn = func(req llm.ChunkRequest) (llm.ChunkFields, error) {
		// the header chunk fails, the totals chunk carries the record
		if len(req.ChunkText) > 0 && req.ChunkText[0] == 'A' {
			return llm.ChunkFields{}, fmt.Errorf("%w: malformed response", common.ErrChunkExtractionFailed)
		}
		return goodFields(req)
	}
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}},
		&fakeRecordStore{},
		&fakeCollector{meta: viability.Metadata{PageCount: 2, HasExtractableText: true}},
		&fakeStructurer{res: structure.ExtractResult{Sections: invoiceSections(), Pages: 2, TextExtractionSuccess: true}},
		ext,
	)

	out, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "invoice.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, out.ChunksTotal)
	assert.Equal(t, 1, out.ChunksFailed)
	require.NotNil(t, out.Record)
	assert.Contains(t, out.Record.Flags, "partial_extraction")
	assert.True(t, out.Record.NeedsReview)
	assert.Equal(t, [2]int{2, 1}, h.jobs.successWith)
}

func TestProcessUpload_UpstreamUnavailableAbortsDocument(t *testing.T) {
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}},
		&fakeRecordStore{},
		&fakeCollector{meta: viability.Metadata{PageCount: 2, HasExtractableText: true}},
		&fakeStructurer{res: structure.ExtractResult{Sections: invoiceSections(), Pages: 2, TextExtractionSuccess: true}},
		&fakeExtractor{fn: func(llm.ChunkRequest) (llm.ChunkFields, error) {
			return llm.ChunkFields{}, fmt.Errorf("%w: status 503", common.ErrUpstreamUnavailable)
		}},
	)

	_, err := h.proc.ProcessUpload(context.Background(), UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "invoice.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.ErrorIs(t, err, common.ErrUpstreamUnavailable)
	assert.NotEmpty(t, h.jobs.failed)
	// the first failing call aborts the rest of the plan
	assert.Equal(t, 1, h.extractor.calls)
	assert.Nil(t, h.records.last)
}

func TestProcessUpload_CancellationStopsSequentialPlan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ext := &fakeExtractor{}
	ext.fn = func(req llm.ChunkRequest) (llm.ChunkFields, error) {
		cancel()
		return goodFields(req)
	}
	h := newHarness(t,
		&fakeDocStore{doc: &ent.Document{ID: uuid.New()}},
		&fakeRecordStore{},
		&fakeCollector{meta: viability.Metadata{PageCount: 2, HasExtractableText: true}},
		&fakeStructurer{res: structure.ExtractResult{Sections: invoiceSections(), Pages: 2, TextExtractionSuccess: true}},
		ext,
	)

	_, err := h.proc.ProcessUpload(ctx, UploadRequest{
		ProfileID: uuid.New(),
		Kind:      constants.KindMaintenance,
		Filename:  "invoice.pdf",
		Raw:       []byte("%PDF-1.7 fake"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, ext.calls)
}
