package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	fleetpb "github.com/hangarline/fleetdocs/gen/proto/fleetdocs/v1"
	"github.com/hangarline/fleetdocs/internal/blob"
	"github.com/hangarline/fleetdocs/internal/common"
	"github.com/hangarline/fleetdocs/internal/dedup"
	"github.com/hangarline/fleetdocs/internal/llm"
	"github.com/hangarline/fleetdocs/internal/pipeline"
	repo "github.com/hangarline/fleetdocs/internal/repository"
	svc "github.com/hangarline/fleetdocs/internal/server"
	"github.com/hangarline/fleetdocs/internal/structure"
	"github.com/hangarline/fleetdocs/internal/viability"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	recordsRepo := repo.NewRecordRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	blobStore := blob.NewFSStore(cfg.Blob.RootDir, logger)

	structurer := structure.NewExtractor(structure.Config{
		WindowBytes:          cfg.Pipeline.TextWindowBytes,
		MaxTextBytes:         cfg.Pipeline.MaxTextBytes,
		MinTextChars:         cfg.Pipeline.MinTextChars,
		MinSectionConfidence: cfg.Pipeline.MinSectionConfidence,
	}, logger)
	collector := viability.NewCollector(structurer, logger)
	extractor := llm.NewClient(cfg.LLM, logger)
	checker := dedup.NewChecker(docsRepo, recordsRepo, logger)

	processor := pipeline.NewProcessor(
		cfg.Pipeline,
		checker,
		blobStore,
		collector,
		structurer,
		extractor,
		recordsRepo,
		docsRepo,
		jobsRepo,
		logger,
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	ingestionService := svc.NewIngestionService(processor, profilesRepo, recordsRepo, logger)
	fleetpb.RegisterIngestionServiceServer(grpcServer, ingestionService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("fleetdocs listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
