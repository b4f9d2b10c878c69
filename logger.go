package snipmatch

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with snipmatch-specific helpers so call sites log
// consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger with human-readable output at the given level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger with JSON output at the given level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogMatch logs the outcome of one query/target run.
func (l *Logger) LogMatch(ctx context.Context, algo Algorithm, matched, total int) {
	l.DebugContext(ctx, "match completed",
		"algorithm", algo.String(),
		"matched", matched,
		"total", total,
	)
}

// LogBatchScan logs the batch engine's filter parameters and window tally.
func (l *Logger) LogBatchScan(ctx context.Context, capacity, windows int) {
	l.DebugContext(ctx, "batch scan completed",
		"bloom_bits", capacity,
		"matched_windows", windows,
	)
}
