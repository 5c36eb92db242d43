// Package dtype converts numeric sample arrays between element types while
// rescaling values so that the full range of the source maps onto the full
// range of the destination.
//
// Integer kinds use their whole range, float kinds use [-1, 1] and bool
// uses {false, true}. Converting uint8 255 to uint16 gives 65535, not 255;
// converting float32 1.0 to int16 gives 32767.
//
// # Quick Start
//
//	a := sample.MustNew([]uint8{0, 128, 255})
//	res, err := dtype.Convert(a, numeric.Float32)
//	// res.Array holds [0 0.50196 1]
//
// Reusable converter with defaults:
//
//	c := dtype.New(dtype.WithUniform(true), dtype.WithWorkers(4))
//	res, err := c.Convert(a, numeric.Int16)
//
// # Conversion Rules
//
//	integer -> wider integer     exact: the source bit pattern is repeated
//	integer -> narrower integer  truncate low bits (or reinterpret when every
//	                             value already fits)
//	signed  -> unsigned          negatives clip to 0 (SignLoss)
//	float   -> integer           scale and round to nearest (or floor with
//	                             WithUniform), input must lie in [-1, 1]
//	integer -> float             normalise into [-1, 1] (WithNormalise)
//	any     -> bool              strictly above the midpoint of the source
//	bool    -> any               false -> 0, true -> type maximum (1.0)
//
// # Diagnostics
//
// Lossy conversions never fail. They succeed and report Diagnostics on the
// Result:
//
//	res, _ := dtype.Convert(sample.MustNew([]int8{-5, 10}), numeric.Uint8)
//	res.Has(dtype.SignLoss)                       // true
//	res.Diagnostics[0].Positions.Contains(0)      // true
//
// Errors are reserved for unsupported kinds (ErrUnsupportedType) and float
// samples outside [-1, 1] converted to a non-float kind (ErrOutOfRange).
//
// # Storage
//
// Converting to the kind an array already has returns the same array unless
// WithForceCopy is set. Every other conversion allocates new storage; the
// input is never modified.
//
// # Concurrency
//
// Converters are immutable and safe for concurrent use. Large arrays are
// split into tiles converted in parallel; ConvertBatch converts independent
// arrays concurrently. Results do not depend on the worker count.
package dtype
