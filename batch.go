package dtype

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dtype/internal/parallel"
	"github.com/hupe1980/dtype/numeric"
	"github.com/hupe1980/dtype/sample"
)

// ConvertBatch converts every array to kind dst using the package defaults.
// See (*Converter).ConvertBatch.
func ConvertBatch(arrays []*sample.Array, dst numeric.Kind, opts ...Option) ([]*Result, error) {
	return defaultConverter.ConvertBatch(arrays, dst, opts...)
}

// ConvertBatch converts independent arrays concurrently. At most
// WithWorkers arrays are in flight and each one is converted on a single
// goroutine.
//
// results[i] belongs to arrays[i] and is nil when that conversion failed.
// The returned error joins every failure, each prefixed with its index.
func (c *Converter) ConvertBatch(arrays []*sample.Array, dst numeric.Kind, opts ...Option) ([]*Result, error) {
	o := c.resolve(opts)
	start := time.Now()

	item := o
	item.workers = 1

	results := make([]*Result, len(arrays))
	errs := make([]error, len(arrays))

	var g errgroup.Group
	g.SetLimit(parallel.Workers(o.workers))
	for i, a := range arrays {
		g.Go(func() error {
			res, err := c.do(a, dst, item)
			if err != nil {
				errs[i] = fmt.Errorf("array %d: %w", i, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if o.logger != nil {
		o.logger.LogBatch(len(arrays), failed)
	}
	if o.metricsCollector != nil {
		o.metricsCollector.RecordBatch(len(arrays), failed, time.Since(start))
	}
	return results, errors.Join(errs...)
}
