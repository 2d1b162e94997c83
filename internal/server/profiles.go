package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fleetpb "github.com/hangarline/fleetdocs/gen/proto/fleetdocs/v1"
	"github.com/hangarline/fleetdocs/internal/repository"
	"github.com/hangarline/fleetdocs/internal/utils"
)

func (s *IngestionService) CreateProfile(ctx context.Context, req *fleetpb.CreateProfileRequest) (*fleetpb.CreateProfileResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.GetDefaultCurrency()))
	if len(currency) != 3 {
		return nil, status.Error(codes.InvalidArgument, "default_currency must be a 3-letter code")
	}

	p, err := s.profileRepo.CreateProfile(ctx, &repository.Profile{
		Name:            name,
		Email:           strings.TrimSpace(req.GetEmail()),
		DefaultCurrency: currency,
	})
	if err != nil {
		s.logger.Warn("create profile failed", "name", name, "error", err)
		return nil, status.Error(codes.Internal, "create profile failed")
	}

	return &fleetpb.CreateProfileResponse{
		Profile: utils.ToPBProfile(utils.ToProfile(p)),
	}, nil
}

func (s *IngestionService) ListProfiles(ctx context.Context, _ *fleetpb.ListProfilesRequest) (*fleetpb.ListProfilesResponse, error) {
	ps, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		s.logger.Warn("list profiles failed", "error", err)
		return nil, status.Error(codes.Internal, "list profiles failed")
	}
	out := make([]*fleetpb.Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, utils.ToPBProfile(utils.ToProfile(p)))
	}
	return &fleetpb.ListProfilesResponse{Profiles: out}, nil
}
