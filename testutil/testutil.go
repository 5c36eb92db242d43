package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/dtype/internal/f16"
	"github.com/hupe1980/dtype/numeric"
	"github.com/hupe1980/dtype/sample"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUnit fills dst with random values in [-1, 1].
// Locks only once per call.
func (r *RNG) FillUnit(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = 2*r.rand.Float64() - 1
	}
}

// FillBits fills dst with uniformly random 64-bit patterns.
func (r *RNG) FillBits(dst []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Uint64()
	}
}

// Array returns n random samples of kind k covering the whole range of k:
// every bit pattern for integers, [-1, 1] for floats. The first samples are
// the range boundaries (min, max, and 0 where it exists) so that edge
// values are always exercised.
func (r *RNG) Array(k numeric.Kind, n int) *sample.Array {
	bits := make([]uint64, n)
	r.FillBits(bits)
	unit := make([]float64, n)
	r.FillUnit(unit)

	switch k {
	case numeric.Bool:
		return sample.MustNew(fromBits(bits, func(u uint64) bool { return u&1 == 1 }))
	case numeric.Uint8:
		return integerArray(bits, 0, math.MaxUint8, func(u uint64) uint8 { return uint8(u) })
	case numeric.Uint16:
		return integerArray(bits, 0, math.MaxUint16, func(u uint64) uint16 { return uint16(u) })
	case numeric.Uint32:
		return integerArray(bits, 0, math.MaxUint32, func(u uint64) uint32 { return uint32(u) })
	case numeric.Uint64:
		return integerArray(bits, 0, math.MaxUint64, func(u uint64) uint64 { return u })
	case numeric.Int8:
		return integerArray(bits, math.MinInt8, math.MaxInt8, func(u uint64) int8 { return int8(u) })
	case numeric.Int16:
		return integerArray(bits, math.MinInt16, math.MaxInt16, func(u uint64) int16 { return int16(u) })
	case numeric.Int32:
		return integerArray(bits, math.MinInt32, math.MaxInt32, func(u uint64) int32 { return int32(u) })
	case numeric.Int64:
		return integerArray(bits, math.MinInt64, math.MaxInt64, func(u uint64) int64 { return int64(u) })
	case numeric.Float16:
		seedBoundaries(unit)
		h := make([]sample.Float16, n)
		f16.Encode(h, unit)
		return sample.MustNew(h)
	case numeric.Float32:
		seedBoundaries(unit)
		return sample.MustNew(fromBits(unit, func(f float64) float32 { return float32(f) }))
	case numeric.Float64:
		seedBoundaries(unit)
		return sample.MustNew(unit)
	default:
		panic("testutil: unsupported kind " + k.String())
	}
}

func fromBits[S, T any](src []S, fn func(S) T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = fn(v)
	}
	return out
}

func integerArray[T sample.Element](bits []uint64, lo, hi T, fn func(uint64) T) *sample.Array {
	out := fromBits(bits, fn)
	for i, v := range []T{lo, hi} {
		if i < len(out) {
			out[i] = v
		}
	}
	return sample.MustNew(out)
}

func seedBoundaries(dst []float64) {
	for i, v := range []float64{-1, 1, 0} {
		if i < len(dst) {
			dst[i] = v
		}
	}
}
