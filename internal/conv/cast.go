package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"fortio.org/safecast"
)

// ErrOverflow is returned when a value does not fit its destination type.
var ErrOverflow = errors.New("integer overflow")

const (
	two63 = 9223372036854775808.0  // 2^63
	two64 = 18446744073709551616.0 // 2^64
)

// SaturateUint64 converts f to uint64, clamping to [0, MaxUint64].
// NaN converts to 0.
func SaturateUint64(f float64) uint64 {
	switch {
	case !(f > 0):
		return 0
	case f >= two64:
		return math.MaxUint64
	default:
		return uint64(f)
	}
}

// SaturateInt64 converts f to int64, clamping to [MinInt64, MaxInt64].
// NaN converts to 0.
func SaturateInt64(f float64) int64 {
	switch {
	case f != f:
		return 0
	case f >= two63:
		return math.MaxInt64
	case f <= -two63:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Elements returns the number of elements of an array with the given
// shape. A nil or empty shape describes a scalar (one element).
func Elements(shape []int) (int, error) {
	total := uint64(1)
	for _, d := range shape {
		ud, err := safecast.Conv[uint64](d)
		if err != nil {
			return 0, fmt.Errorf("invalid dimension %d: %w", d, err)
		}
		hi, lo := bits.Mul64(total, ud)
		if hi != 0 {
			return 0, fmt.Errorf("%w: shape %v", ErrOverflow, shape)
		}
		total = lo
	}
	n, err := safecast.Conv[int](total)
	if err != nil {
		return 0, fmt.Errorf("%w: shape %v", ErrOverflow, shape)
	}
	return n, nil
}

// Index32 converts a flat element index to uint32, reporting false when
// the index does not fit.
func Index32(i int) (uint32, bool) {
	v, err := safecast.Conv[uint32](i)
	return v, err == nil
}
