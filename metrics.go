package dtype

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/dtype/numeric"
)

// MetricsCollector defines an interface for collecting conversion metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    conversions *prometheus.CounterVec
//	    latency     prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordConvert(src, dst numeric.Kind, elements int, d time.Duration, err error) {
//	    p.conversions.WithLabelValues(src.String(), dst.String()).Inc()
//	    p.latency.Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordConvert is called after each conversion.
	// elements is the number of samples, err is nil if successful.
	RecordConvert(src, dst numeric.Kind, elements int, duration time.Duration, err error)

	// RecordDiagnostic is called once per diagnostic raised.
	RecordDiagnostic(kind DiagnosticKind)

	// RecordBatch is called after each batch conversion.
	// count is the number of arrays, failed is the number that failed.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConvert(numeric.Kind, numeric.Kind, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDiagnostic(DiagnosticKind)                                    {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)                                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConvertCount      atomic.Int64
	ConvertErrors     atomic.Int64
	ConvertElements   atomic.Int64
	ConvertTotalNanos atomic.Int64
	SignLosses        atomic.Int64
	PrecisionLosses   atomic.Int64
	Downcasts         atomic.Int64
	BatchCount        atomic.Int64
	BatchItems        atomic.Int64
	BatchFailed       atomic.Int64
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(_, _ numeric.Kind, elements int, duration time.Duration, err error) {
	b.ConvertCount.Add(1)
	b.ConvertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConvertErrors.Add(1)
		return
	}
	b.ConvertElements.Add(int64(elements))
}

// RecordDiagnostic implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDiagnostic(kind DiagnosticKind) {
	switch kind {
	case SignLoss:
		b.SignLosses.Add(1)
	case PrecisionLoss:
		b.PrecisionLosses.Add(1)
	case DowncastWithoutScaling:
		b.Downcasts.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Conversions:     b.ConvertCount.Load(),
		ConvertErrors:   b.ConvertErrors.Load(),
		Elements:        b.ConvertElements.Load(),
		ConvertAvgNanos: b.getAvgConvertNanos(),
		SignLosses:      b.SignLosses.Load(),
		PrecisionLosses: b.PrecisionLosses.Load(),
		Downcasts:       b.Downcasts.Load(),
		BatchCount:      b.BatchCount.Load(),
		BatchItems:      b.BatchItems.Load(),
		BatchFailed:     b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgConvertNanos() int64 {
	count := b.ConvertCount.Load()
	if count == 0 {
		return 0
	}
	return b.ConvertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	Conversions     int64
	ConvertErrors   int64
	Elements        int64
	ConvertAvgNanos int64
	SignLosses      int64
	PrecisionLosses int64
	Downcasts       int64
	BatchCount      int64
	BatchItems      int64
	BatchFailed     int64
}
