// Package conv provides checked and saturating numeric conversions.
//
// Checked conversions (shape sizes, flat indices) report an error instead of
// wrapping; they build on fortio.org/safecast. Saturating conversions map a
// float64 onto an integer range, clamping values the target cannot hold, and
// are used by the float-to-integer kernels after clipping, where a value such
// as float64(math.MaxUint64) (= 2^64) would otherwise overflow the cast.
package conv
