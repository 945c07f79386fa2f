package primesieve

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with sieve-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBase adds a block base field to the logger.
func (l *Logger) WithBase(base uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("base", base),
	}
}

// LogBaseSieve logs completion of the base sieve.
func (l *Logger) LogBaseSieve(ctx context.Context, primes uint64, duration time.Duration) {
	l.DebugContext(ctx, "base sieve completed",
		"primes", primes,
		"duration", duration,
	)
}

// LogBlock logs a sieved block.
func (l *Logger) LogBlock(ctx context.Context, base uint32, primes int, duration time.Duration) {
	l.DebugContext(ctx, "block sieved",
		"base", base,
		"primes", primes,
		"duration", duration,
	)
}

// LogProgress logs the position of a long-running segmented phase.
func (l *Logger) LogProgress(ctx context.Context, base uint32, limit uint64, emitted uint64) {
	l.InfoContext(ctx, "sieve progress",
		"base", base,
		"percent", float64(base)/float64(limit)*100,
		"emitted", emitted,
	)
}

// LogRun logs the end of a run.
func (l *Logger) LogRun(ctx context.Context, stats Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sieve failed",
			"emitted", stats.Primes,
			"blocks", stats.Blocks,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sieve completed",
			"emitted", stats.Primes,
			"largest", stats.Largest,
			"blocks", stats.Blocks,
			"duration", stats.Duration,
		)
	}
}
