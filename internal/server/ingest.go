package server

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hangarline/fleetdocs/constants"
	fleetpb "github.com/hangarline/fleetdocs/gen/proto/fleetdocs/v1"
	"github.com/hangarline/fleetdocs/internal/common"
	"github.com/hangarline/fleetdocs/internal/pipeline"
	"github.com/hangarline/fleetdocs/internal/utils"
)

// UploadDocument implements fleetpb.IngestionServiceServer
func (s *IngestionService) UploadDocument(ctx context.Context, req *fleetpb.UploadDocumentRequest) (*fleetpb.UploadDocumentResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	if pid == "" {
		s.logger.Error("upload request missing profile_id")
		return nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid profile_id format for upload", "profile_id", pid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("upload request missing path", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	kind, ok := constants.ParseKind(req.GetKind())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown record kind %q", req.GetKind())
	}

	if exists, _ := s.profileRepo.Exists(ctx, profileID); !exists {
		s.logger.Error("profile not found for upload", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "profile not found")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "read %s: %v", path, err)
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	s.logger.Info("starting document upload", "profile_id", profileID, "path", path, "kind", kind)

	out, perr := s.processor.ProcessUpload(ctx, pipeline.UploadRequest{
		ProfileID: profileID,
		Kind:      kind,
		Filename:  filepath.Base(path),
		Raw:       raw,
	})
	if out == nil {
		// Rejected before a document row existed (bad extension, empty file).
		return nil, perr
	}

	resp := &fleetpb.UploadDocumentResponse{
		Deduplicated: out.Deduplicated,
	}
	resp.Document = &fleetpb.Document{
		Id:             out.DocumentID.String(),
		ProfileId:      profileID.String(),
		ContentHashHex: out.Fingerprint,
		Filename:       filepath.Base(path),
	}

	switch {
	case perr == nil && out.CachedRecordID != uuid.Nil:
		// The cached record may live in the other table than the one this
		// upload asked for; attach by its actual kind.
		resp.RecordId = out.CachedRecordID.String()
		s.attachRecord(ctx, resp, out.CachedKind, out.DocumentID)
	case perr == nil:
		resp.RecordId = out.RecordID.String()
		s.attachRecord(ctx, resp, kind, out.DocumentID)
	case errors.Is(perr, common.ErrValidationRejected),
		errors.Is(perr, common.ErrInsufficientText),
		errors.Is(perr, common.ErrNotViable):
		// The caller asked a well-formed question and got a definitive "no
		// record"; surface the reason in-band rather than as an RPC failure.
		resp.RejectReason = perr.Error()
	default:
		s.logger.Error("pipeline.failed", "document_id", out.DocumentID, "err", perr)
		resp.Error = perr.Error()
	}
	return resp, nil
}

func (s *IngestionService) attachRecord(ctx context.Context, resp *fleetpb.UploadDocumentResponse, kind constants.RecordKind, documentID uuid.UUID) {
	switch kind {
	case constants.KindMaintenance:
		if rec, err := s.recordRepo.GetMaintenanceByDocument(ctx, documentID); err == nil {
			resp.MaintenanceRecord = utils.ToPBMaintenanceRecord(rec)
		}
	default:
		if rec, err := s.recordRepo.GetExpenseByDocument(ctx, documentID); err == nil {
			resp.ExpenseRecord = utils.ToPBExpenseRecord(rec)
		}
	}
}
