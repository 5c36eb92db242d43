package dtype

import (
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/dtype/numeric"
)

// Logger wraps slog.Logger with dtype-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithKinds adds source and destination kind fields to the logger.
func (l *Logger) WithKinds(src, dst numeric.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", src.String(), "destination", dst.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogConvert logs the outcome of a single conversion. Diagnostics are
// logged at warn level, failures at error level and plain successes at
// debug level.
func (l *Logger) LogConvert(src, dst numeric.Kind, elements int, diags []Diagnostic, err error) {
	if err != nil {
		l.Error("conversion failed",
			"source", src.String(),
			"destination", dst.String(),
			"elements", elements,
			"error", err,
		)
		return
	}
	for _, d := range diags {
		attrs := []any{
			"kind", d.Kind.String(),
			"source", d.Source.String(),
			"destination", d.Destination.String(),
		}
		if d.Positions != nil {
			attrs = append(attrs, "clipped", d.Positions.GetCardinality())
		}
		l.Warn(d.String(), attrs...)
	}
	l.Debug("conversion completed",
		"source", src.String(),
		"destination", dst.String(),
		"elements", elements,
		"diagnostics", len(diags),
	)
}

// LogBatch logs a batch conversion.
func (l *Logger) LogBatch(count, failed int) {
	if failed > 0 {
		l.Warn("batch conversion completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.Info("batch conversion completed",
			"count", count,
		)
	}
}
