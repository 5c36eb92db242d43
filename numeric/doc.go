// Package numeric is the registry of sample types supported by dtype.
//
// Every Kind maps to a Descriptor holding its representable closed interval.
// Integer kinds use their full machine range, Bool uses [0, 1] and every
// float width is treated as normalised to [-1.0, 1.0]:
//
//	d, _ := numeric.RangeOf(numeric.Int8)
//	fmt.Println(d.Min, d.Max) // -128 127
//
// The table is immutable and safe for concurrent use.
package numeric
