// Package testutil provides testing utilities for dtype.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Sample Generation
//
//	rng := testutil.NewRNG(seed)
//	a := rng.Array(numeric.Int16, 1024) // full-range int16 samples
//
// Arrays always start with the range boundaries of their kind.
package testutil
