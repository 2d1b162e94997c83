package server

import (
	"log/slog"

	fleetpb "github.com/hangarline/fleetdocs/gen/proto/fleetdocs/v1"
	"github.com/hangarline/fleetdocs/internal/pipeline"
	"github.com/hangarline/fleetdocs/internal/repository"
)

// IngestionService exposes the pipeline over gRPC. It holds no pipeline
// logic of its own; every upload funnels into the processor.
type IngestionService struct {
	fleetpb.UnimplementedIngestionServiceServer
	processor   *pipeline.Processor
	profileRepo repository.ProfileRepository
	recordRepo  repository.RecordRepository
	logger      *slog.Logger
}

func NewIngestionService(
	proc *pipeline.Processor,
	profiles repository.ProfileRepository,
	records repository.RecordRepository,
	logger *slog.Logger,
) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		processor:   proc,
		profileRepo: profiles,
		recordRepo:  records,
		logger:      logger,
	}
}
