// Package logging wraps slog with the field names gapbench uses.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Logger wraps slog.Logger with benchmark-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w in the given format ("text" or "json")
// at the given level ("debug", "info", "warn" or "error").
func New(w io.Writer, format, level string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.Newf("unknown log format %q", format)
	}
	return &Logger{Logger: slog.New(handler)}, nil
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithWorkload adds a workload field to the logger.
func (l *Logger) WithWorkload(name string) *Logger {
	return &Logger{Logger: l.Logger.With("workload", name)}
}

// WithContainer adds a container field to the logger.
func (l *Logger) WithContainer(name string) *Logger {
	return &Logger{Logger: l.Logger.With("container", name)}
}

// LogCase logs one finished (size, container) measurement.
func (l *Logger) LogCase(ctx context.Context, size int, avg time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "case failed",
			"size", size,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "case completed",
		"size", size,
		"avg", avg,
	)
}

// LogRun logs the end of a whole workload run.
func (l *Logger) LogRun(ctx context.Context, cases int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"cases", cases,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "run completed",
		"cases", cases,
		"elapsed", elapsed,
	)
}
