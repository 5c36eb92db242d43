package dtype

import (
	"log/slog"
)

type options struct {
	forceCopy        bool
	uniform          bool
	normalise        bool
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{normalise: true}
}

// Option configures a Converter or a single conversion.
//
// Options given to New become the converter's defaults; options given to
// Convert override them for that call only.
type Option func(*options)

// WithForceCopy forces a copy even when the source already has the
// destination kind. Without it the input array itself is returned.
func WithForceCopy(force bool) Option {
	return func(o *options) {
		o.forceCopy = force
	}
}

// WithUniform selects uniform quantization for float to integer
// conversions.
//
// By default (uniform=false) float samples are scaled and rounded to the
// nearest integer, which minimizes round-trip error. Uniform quantization
// scales by range+1 and floors, so every integer bucket has the same width.
func WithUniform(uniform bool) Option {
	return func(o *options) {
		o.uniform = uniform
	}
}

// WithNormalise controls integer to float conversions. When true (the
// default) results are rescaled into [-1, 1]: unsigned samples are divided
// by the type maximum and signed samples are mapped so that the type
// minimum becomes -1 and the maximum +1. When false, integer values are
// cast unchanged.
func WithNormalise(normalise bool) Option {
	return func(o *options) {
		o.normalise = normalise
	}
}

// WithWorkers bounds the number of goroutines used for one conversion and
// for ConvertBatch. n <= 0 means GOMAXPROCS.
//
// Arrays smaller than a tile (32Ki samples) are always converted on the
// calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures structured logging of diagnostics and failures.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := dtype.NewJSONLogger(slog.LevelInfo)
//	c := dtype.New(dtype.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for conversions.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dtype.BasicMetricsCollector{}
//	c := dtype.New(dtype.WithMetricsCollector(metrics))
//	// ... convert ...
//	stats := metrics.GetStats()
//	fmt.Printf("Conversions: %d, precision losses: %d\n", stats.Conversions, stats.PrecisionLosses)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}
