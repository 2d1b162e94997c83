package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/internal/chunker"
	"github.com/hangarline/fleetdocs/internal/common"
	"github.com/hangarline/fleetdocs/internal/consolidate"
	"github.com/hangarline/fleetdocs/internal/dedup"
	"github.com/hangarline/fleetdocs/internal/llm"
	"github.com/hangarline/fleetdocs/internal/repository"
	"github.com/hangarline/fleetdocs/internal/structure"
	"github.com/hangarline/fleetdocs/internal/viability"
)

// BlobStore is the slice of blob storage the processor needs. Put must
// complete before any extraction touches the stored copy.
type BlobStore interface {
	Put(ctx context.Context, path string, data []byte) (string, error)
	LocalPath(path string) string
}

// MetadataCollector reads cheap document metadata ahead of any extraction.
type MetadataCollector interface {
	Collect(ctx context.Context, raw []byte, storedPath string) (viability.Metadata, error)
}

// Structurer runs bounded text extraction and segmentation over a stored PDF.
type Structurer interface {
	Extract(ctx context.Context, path string, hint constants.Strategy) (structure.ExtractResult, error)
}

// RecordWriter persists a validated record.
type RecordWriter interface {
	CreateFromValidated(ctx context.Context, req *repository.CreateRecordRequest) (uuid.UUID, error)
}

// DocumentUpdater backfills document metadata discovered during processing.
type DocumentUpdater interface {
	SetStorageURL(ctx context.Context, id uuid.UUID, url string) error
	SetPageCount(ctx context.Context, id uuid.UUID, pages int) error
}

// UploadRequest is one document handed to the processor.
type UploadRequest struct {
	ProfileID uuid.UUID
	Kind      constants.RecordKind
	Filename  string
	Raw       []byte
}

// Outcome reports what happened to an upload. Exactly one of CachedRecordID
// and RecordID is set on success.
type Outcome struct {
	DocumentID      uuid.UUID
	Fingerprint     string
	Deduplicated    bool
	CachedRecordID  uuid.UUID
	CachedKind      constants.RecordKind // kind of the cached record; may differ from the requested kind
	RecordID        uuid.UUID
	Record          *consolidate.ValidatedRecord
	Strategy        constants.Strategy
	PlanStrategy    constants.PlanStrategy
	ChunksTotal     int
	ChunksFailed    int
	TokenEfficiency float64
}

// Processor is the single orchestrator for document ingestion. Every upload
// path (gRPC, batch CLI, queue) funnels through ProcessUpload; there are no
// per-transport pipeline variants.
type Processor struct {
	cfg          common.PipelineConfig
	checker      *dedup.Checker
	blob         BlobStore
	collector    MetadataCollector
	classifier   *viability.Classifier
	structurer   Structurer
	chunker      *chunker.Chunker
	extractor    llm.Extractor
	consolidator *consolidate.Consolidator
	validator    *consolidate.Validator
	records      RecordWriter
	docs         DocumentUpdater
	jobs         repository.ExtractJobRepository
	log          *slog.Logger
}

func NewProcessor(
	cfg common.PipelineConfig,
	checker *dedup.Checker,
	blobs BlobStore,
	collector MetadataCollector,
	structurer Structurer,
	extractor llm.Extractor,
	records RecordWriter,
	docs DocumentUpdater,
	jobs repository.ExtractJobRepository,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:        cfg,
		checker:    checker,
		blob:       blobs,
		collector:  collector,
		classifier: viability.NewClassifier(cfg.DirectPageThreshold),
		structurer: structurer,
		chunker: chunker.New(chunker.Config{
			TokenBudget:         cfg.ChunkTokenBudget,
			SequentialMaxChunks: cfg.SequentialMaxChunks,
			MaxConcurrentChunks: cfg.MaxConcurrentChunks,
		}, logger),
		extractor:    extractor,
		consolidator: consolidate.NewConsolidator(logger),
		validator: consolidate.NewValidator(consolidate.ValidatorConfig{
			MinRecordConfidence: cfg.MinRecordConfidence,
			ReconcileTolerance:  cfg.ReconcileTolerance,
		}, logger),
		records: records,
		docs:    docs,
		jobs:    jobs,
		log:     logger,
	}
}

// ProcessUpload runs an upload end to end: dedup, blob storage, viability,
// structure extraction, chunk planning, extraction calls, consolidation,
// validation, persistence. Terminal errors wrap the pipeline sentinels in
// package common.
func (p *Processor) ProcessUpload(ctx context.Context, req UploadRequest) (*Outcome, error) {
	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !constants.AllowedExt(ext) {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}
	if len(req.Raw) == 0 {
		return nil, common.InvalidArgumentError("empty upload")
	}

	ded, err := p.checker.Check(ctx, req.ProfileID, req.Kind, req.Filename, ext, req.Raw)
	if err != nil {
		return nil, common.WrapError(err, "dedup check")
	}

	out := &Outcome{
		DocumentID:   ded.Document.ID,
		Fingerprint:  ded.Fingerprint,
		Deduplicated: ded.Deduplicated,
	}
	if ded.Cached != nil {
		out.CachedRecordID = ded.Cached.RecordID
		out.CachedKind = ded.Cached.Kind
		return out, nil
	}

	// Store before extraction: the pipeline only ever reads the stored copy,
	// so a crash mid-processing never strands a record without its source.
	blobPath := fmt.Sprintf("profiles/%s/%s%s", req.ProfileID, ded.Fingerprint, ext)
	url, err := p.blob.Put(ctx, blobPath, req.Raw)
	if err != nil {
		return nil, common.WrapError(err, "store document")
	}
	if err := p.docs.SetStorageURL(ctx, ded.Document.ID, url); err != nil {
		return nil, common.WrapError(err, "record storage url")
	}

	job, err := p.jobs.Start(ctx, ded.Document.ID, req.ProfileID, req.Kind)
	if err != nil {
		return nil, common.WrapError(err, "start extract job")
	}

	localPath := p.blob.LocalPath(blobPath)

	rec, rejected, err := p.run(ctx, req, out, job.ID, localPath)
	switch {
	case rejected != nil:
		_ = p.jobs.FinishRejected(ctx, job.ID, string(rejected.Reason))
		return out, fmt.Errorf("%w: %s", common.ErrValidationRejected, rejected.Error())
	case err != nil:
		if errors.Is(err, common.ErrInsufficientText) {
			_ = p.jobs.FinishRejected(ctx, job.ID, string(consolidate.ReasonInsufficientText))
		} else {
			_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		}
		return out, err
	}

	recordID, err := p.records.CreateFromValidated(ctx, &repository.CreateRecordRequest{
		ProfileID:  req.ProfileID,
		DocumentID: ded.Document.ID,
		Record:     rec,
	})
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return out, common.WrapError(err, "persist record")
	}
	if err := p.jobs.FinishSuccess(ctx, job.ID, out.ChunksTotal, out.ChunksFailed); err != nil {
		return out, err
	}

	out.RecordID = recordID
	out.Record = rec
	p.log.Info("pipeline.complete",
		"document_id", ded.Document.ID,
		"record_id", recordID,
		"strategy", out.Strategy,
		"plan", out.PlanStrategy,
		"chunks_total", out.ChunksTotal,
		"chunks_failed", out.ChunksFailed,
	)
	return out, nil
}

// run covers the stages between job start and persistence. It reports either
// a validated record, a typed rejection, or a terminal error; terminal job
// transitions stay with the caller.
func (p *Processor) run(ctx context.Context, req UploadRequest, out *Outcome, jobID uuid.UUID, localPath string) (*consolidate.ValidatedRecord, *consolidate.Rejection, error) {
	ctx = common.WithFingerprint(ctx, out.Fingerprint)

	meta, err := p.collector.Collect(ctx, req.Raw, localPath)
	if err != nil {
		return nil, nil, err
	}
	_ = p.docs.SetPageCount(ctx, out.DocumentID, meta.PageCount)

	viab := p.classifier.Classify(meta)
	if !viab.IsViable {
		return nil, nil, fmt.Errorf("%w: %s", common.ErrNotViable, strings.Join(viab.Warnings, "; "))
	}
	out.Strategy = viab.Strategy
	p.log.Info("pipeline.viability",
		"document_id", out.DocumentID,
		"strategy", viab.Strategy,
		"complexity", viab.Complexity,
		"pages", meta.PageCount,
		"est_seconds", viab.EstimatedTimeSeconds,
	)

	sres, err := p.structurer.Extract(ctx, localPath, viab.Strategy)
	if err != nil {
		return nil, nil, err
	}
	if err := p.jobs.MarkTextOK(ctx, jobID, viab.Strategy); err != nil {
		p.log.Warn("pipeline.job_update_failed", "document_id", out.DocumentID, "error", err)
	}

	plan, err := p.chunker.Plan(sres.Sections, viab.Strategy)
	if err != nil {
		return nil, nil, err
	}
	out.PlanStrategy = plan.Plan.Strategy
	out.ChunksTotal = len(plan.Chunks)
	out.TokenEfficiency = plan.TokenEfficiency

	outcomes, err := p.execute(ctx, plan)
	if err != nil {
		return nil, nil, err
	}
	for _, o := range outcomes {
		if o.Err != nil {
			out.ChunksFailed++
		}
	}

	cand := p.consolidator.Consolidate(outcomes)
	rec, rej := p.validator.Validate(cand, req.Kind, out.Fingerprint)
	if rej != nil {
		return nil, rej, nil
	}
	return rec, nil, nil
}

// execute runs the extraction plan. Individual chunk failures are absorbed as
// failed outcomes; an unavailable upstream aborts the whole document since
// every remaining call would fail the same way.
func (p *Processor) execute(ctx context.Context, res chunker.Result) ([]consolidate.ChunkOutcome, error) {
	byID := make(map[string]chunker.Chunk, len(res.Chunks))
	for _, c := range res.Chunks {
		byID[c.ID] = c
	}

	outcomes := make([]consolidate.ChunkOutcome, 0, len(res.Chunks))

	runOne := func(ctx context.Context, c chunker.Chunk) consolidate.ChunkOutcome {
		fields, raw, err := p.extractor.ExtractChunk(ctx, llm.ChunkRequest{
			ChunkText:              c.Content,
			ProcessingInstructions: c.ProcessingInstructions,
			ExpectedOutputFields:   c.ExpectedOutputFields,
			OutputFormat:           "json",
		})
		return consolidate.ChunkOutcome{
			ChunkID:  c.ID,
			Priority: c.Priority,
			Fields:   fields,
			Raw:      raw,
			Err:      err,
		}
	}

	runSequential := func(ids []string) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := runOne(ctx, byID[id])
			if o.Err != nil && errors.Is(o.Err, common.ErrUpstreamUnavailable) {
				return o.Err
			}
			outcomes = append(outcomes, o)
		}
		return nil
	}

	runGroups := func(groups [][]string) error {
		for _, group := range groups {
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(p.cfg.MaxConcurrentChunks)
			slot := make([]consolidate.ChunkOutcome, len(group))
			for i, id := range group {
				i, c := i, byID[id]
				g.Go(func() error {
					o := runOne(gctx, c)
					if o.Err != nil && errors.Is(o.Err, common.ErrUpstreamUnavailable) {
						return o.Err
					}
					slot[i] = o
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			outcomes = append(outcomes, slot...)
		}
		return nil
	}

	var err error
	switch res.Plan.Strategy {
	case constants.PlanSequential:
		err = runSequential(res.Plan.SequentialOrder)
	case constants.PlanHybrid:
		if err = runSequential(res.Plan.SequentialOrder); err == nil {
			err = runGroups(res.Plan.BatchGroups)
		}
	default:
		err = runGroups(res.Plan.BatchGroups)
	}
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}
