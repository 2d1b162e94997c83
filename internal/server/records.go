package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fleetpb "github.com/hangarline/fleetdocs/gen/proto/fleetdocs/v1"
	"github.com/hangarline/fleetdocs/internal/utils"
)

func parseListRequest(req *fleetpb.ListRecordsRequest) (uuid.UUID, *time.Time, *time.Time, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return uuid.Nil, nil, nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	parseDate := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := utils.ParseYMD(s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return &t, nil
	}

	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return uuid.Nil, nil, nil, status.Error(codes.InvalidArgument, err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return uuid.Nil, nil, nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return profileID, from, to, nil
}

func (s *IngestionService) ListMaintenanceRecords(ctx context.Context, req *fleetpb.ListRecordsRequest) (*fleetpb.ListMaintenanceRecordsResponse, error) {
	profileID, from, to, err := parseListRequest(req)
	if err != nil {
		return nil, err
	}

	recs, err := s.recordRepo.ListMaintenance(ctx, profileID, from, to)
	if err != nil {
		s.logger.Warn("list maintenance records failed", "profile_id", profileID, "error", err)
		return nil, status.Error(codes.Internal, "list maintenance records failed")
	}

	out := make([]*fleetpb.MaintenanceRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBMaintenanceRecord(r))
	}
	return &fleetpb.ListMaintenanceRecordsResponse{Records: out}, nil
}

func (s *IngestionService) ListExpenseRecords(ctx context.Context, req *fleetpb.ListRecordsRequest) (*fleetpb.ListExpenseRecordsResponse, error) {
	profileID, from, to, err := parseListRequest(req)
	if err != nil {
		return nil, err
	}

	recs, err := s.recordRepo.ListExpenses(ctx, profileID, from, to)
	if err != nil {
		s.logger.Warn("list expense records failed", "profile_id", profileID, "error", err)
		return nil, status.Error(codes.Internal, "list expense records failed")
	}

	out := make([]*fleetpb.ExpenseRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBExpenseRecord(r))
	}
	return &fleetpb.ListExpenseRecordsResponse{Records: out}, nil
}
