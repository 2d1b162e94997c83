package blob

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hangarline/fleetdocs/internal/common"
)

// Store is the object-storage dependency of the pipeline. Uploads go through
// Put before extraction begins; a Put failure aborts the run.
type Store interface {
	Put(ctx context.Context, path string, data []byte) (publicURL string, err error)
}

// FSStore keeps blobs on the local filesystem under a root directory. It
// stands in for the hosted object store in development and tests.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) *FSStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSStore{root: root, logger: logger}
}

func (s *FSStore) Put(ctx context.Context, path string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := filepath.Clean(strings.TrimPrefix(path, "/"))
	if strings.HasPrefix(clean, "..") {
		return "", common.NewAppError("BLOB_PATH", fmt.Sprintf("path escapes root: %q", path), common.ErrInvalidInput)
	}
	full := filepath.Join(s.root, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		s.logger.Error("blob.put.mkdir_failed", "path", full, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		s.logger.Error("blob.put.write_failed", "path", full, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}
	s.logger.Debug("blob.put.ok", "path", clean, "bytes", len(data))
	return "file://" + full, nil
}

// LocalPath maps a stored object path back to the filesystem location.
// The structure extractor reads the stored copy, never the upload buffer.
func (s *FSStore) LocalPath(path string) string {
	return filepath.Join(s.root, filepath.Clean(strings.TrimPrefix(path, "/")))
}
