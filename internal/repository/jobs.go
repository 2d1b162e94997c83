package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, documentID, profileID uuid.UUID, kind constants.RecordKind) (*ent.ExtractJob, error)
	MarkTextOK(ctx context.Context, jobID uuid.UUID, strategy constants.Strategy) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, chunksTotal, chunksFailed int) error
	FinishRejected(ctx context.Context, jobID uuid.UUID, reason string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, documentID, profileID uuid.UUID, kind constants.RecordKind) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetProfileID(profileID).
		SetKind(string(kind)).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "document_id", documentID, "kind", kind)
	return job, nil
}

func (r *extractJobRepo) MarkTextOK(ctx context.Context, jobID uuid.UUID, strategy constants.Strategy) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusTextOK)).
		SetStrategy(string(strategy)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, chunksTotal, chunksFailed int) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusLLMOK)).
		SetChunksTotal(chunksTotal).
		SetChunksFailed(chunksFailed).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(LLM_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (LLM_OK)", "job_id", jobID, "chunks_total", chunksTotal, "chunks_failed", chunksFailed)
	return nil
}

func (r *extractJobRepo) FinishRejected(ctx context.Context, jobID uuid.UUID, reason string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRejected)).
		SetRejectReason(reason).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(REJECTED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (REJECTED)", "job_id", jobID, "reason", reason)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
