package structure

import (
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"context"
)

// Runner lets us stub the external text-extraction command in tests.
// Stream hands back the command's stdout so callers can consume it in
// bounded windows instead of materializing the whole output.
type Runner interface {
	Stream(ctx context.Context, name string, args ...string) (stdout io.ReadCloser, wait func() error, err error)
}

type execRunner struct{}

func (execRunner) Stream(ctx context.Context, name string, args ...string) (io.ReadCloser, func() error, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var errb strings.Builder
	cmd.Stderr = &errb

	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}

	wait := func() error {
		err := cmd.Wait()
		dur := time.Since(start)
		if err != nil {
			slog.Error("exec failed",
				"cmd", name,
				"args", strings.Join(args, " "),
				"duration_ms", dur.Milliseconds(),
				"error", err,
				"stderr", truncate(errb.String(), 8<<10), // cap at 8KB
			)
		} else {
			slog.Debug("exec ok",
				"cmd", name,
				"args", strings.Join(args, " "),
				"duration_ms", dur.Milliseconds(),
			)
		}
		return err
	}
	return out, wait, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
