package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/internal/async"
	"github.com/hangarline/fleetdocs/internal/blob"
	"github.com/hangarline/fleetdocs/internal/common"
	"github.com/hangarline/fleetdocs/internal/dedup"
	"github.com/hangarline/fleetdocs/internal/llm"
	"github.com/hangarline/fleetdocs/internal/pipeline"
	repo "github.com/hangarline/fleetdocs/internal/repository"
	"github.com/hangarline/fleetdocs/internal/structure"
	"github.com/hangarline/fleetdocs/internal/viability"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir        = flag.String("dir", "", "directory of PDFs to ingest (required)")
		profileStr = flag.String("profile", "", "profile UUID (required)")
		kindStr    = flag.String("kind", "MAINTENANCE", "record kind: MAINTENANCE or EXPENSE")
		workers    = flag.Int("workers", 4, "concurrent documents")
		skipHidden = flag.Bool("skip-hidden", true, "skip dotfiles and hidden directories")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	profileID, err := uuid.Parse(*profileStr)
	if err != nil {
		printError("Error: --profile must be a UUID: %v\n", err)
		os.Exit(1)
	}
	kind, ok := constants.ParseKind(*kindStr)
	if !ok {
		printError("Error: unknown --kind %q\n", *kindStr)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		printError("Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	profilesRepo := repo.NewProfileRepository(entc, logger)
	if exists, _ := profilesRepo.Exists(ctx, profileID); !exists {
		printError("Error: profile %s not found\n", profileID)
		os.Exit(1)
	}

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

	processor := pipeline.NewProcessor(
		cfg.Pipeline,
		dedup.NewChecker(docsRepo, recordsRepo, logger),
		blobStore,
		viability.NewCollector(structurer, logger),
		structurer,
		llm.NewClient(cfg.LLM, logger),
		recordsRepo,
		docsRepo,
		jobsRepo,
		logger,
	)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(*workers),
		async.WithQueueSize(1024),
		async.WithProcessTimeout(5*time.Minute),
	)

	matched := 0
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if *skipHidden && strings.HasPrefix(name, ".") && path != *dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !constants.AllowedExt(filepath.Ext(name)) {
			return nil
		}
		matched++
		return queue.Enqueue(ctx, async.Job{
			ProfileID:   profileID,
			Kind:        kind,
			Path:        path,
			SubmittedAt: time.Now(),
			TraceID:     uuid.NewString(),
		})
	})
	if err != nil {
		printError("Error: walk %s: %v\n", *dir, err)
		os.Exit(1)
	}

	logger.Info("batch enqueued", "dir", *dir, "matched", matched, "workers", *workers)
	queue.Shutdown(ctx)
	logger.Info("batch complete", "matched", matched)
}
