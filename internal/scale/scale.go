// Package scale rescales integer samples between bit widths.
//
// A value with n significant bits is mapped onto m significant bits so that
// 0 stays 0 and the largest n-bit value becomes the largest m-bit value,
// exactly whenever m is a multiple of n:
//
//	p := scale.NewPlan(8, 16, 0) // Exact, multiplier 257
//	p.Apply(255)                 // 65535
//
// Narrowing keeps values untouched when they already fit (Reinterpret) and
// otherwise drops the low-order bits (Truncate). Widening to a width that is
// not a multiple of n first widens exactly to the next multiple above m and
// then truncates (ExactThenTruncate). Intermediate products are computed on
// 128 bits, so every pair of widths up to 64 is handled.
package scale

import (
	"fmt"
	"math/bits"
)

// Integer is the set of sample storage types the scaler accepts.
type Integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Path is the rescaling strategy chosen by a plan.
type Path uint8

const (
	// Identity leaves values unchanged (n == m).
	Identity Path = iota
	// Reinterpret narrows storage without arithmetic; every value fits.
	Reinterpret
	// Truncate floor-divides by 2^(n-m).
	Truncate
	// Exact multiplies by (2^m-1)/(2^n-1); m is a multiple of n.
	Exact
	// ExactThenTruncate widens exactly to a multiple of n above m and
	// truncates back down to m bits.
	ExactThenTruncate
)

// String returns the path name.
func (p Path) String() string {
	switch p {
	case Identity:
		return "identity"
	case Reinterpret:
		return "reinterpret"
	case Truncate:
		return "truncate"
	case Exact:
		return "exact"
	case ExactThenTruncate:
		return "exact-then-truncate"
	default:
		return fmt.Sprintf("Path(%d)", uint8(p))
	}
}

// Lossy reports whether the path discards low-order bits.
func (p Path) Lossy() bool {
	return p == Truncate || p == ExactThenTruncate
}

// Plan is a precomputed per-element rescaling from N to M bits.
type Plan struct {
	N, M uint
	Path Path

	mult  uint64
	shift uint
}

// NewPlan classifies the rescaling of values with n significant bits to m
// significant bits. max is the largest value to be scaled; it only matters
// when narrowing (n > m). Widths must lie in [1, 64].
func NewPlan(n, m uint, max uint64) Plan {
	if n == 0 || m == 0 || n > 64 || m > 64 {
		panic(fmt.Sprintf("scale: invalid widths %d -> %d", n, m))
	}

	p := Plan{N: n, M: m}
	switch {
	case n > m && max < uint64(1)<<m:
		p.Path = Reinterpret
	case n == m:
		p.Path = Identity
	case n > m:
		p.Path = Truncate
		p.shift = n - m
	case m%n == 0:
		p.Path = Exact
		p.mult = repunit(n, m)
	default:
		o := (m/n + 1) * n
		p.Path = ExactThenTruncate
		p.mult = repunit(n, o)
		p.shift = o - m
	}
	return p
}

// NeedsMax reports whether NewPlan depends on the maximum input value.
func NeedsMax(n, m uint) bool {
	return n > m
}

// Apply rescales a single value. v must fit in N bits.
func (p Plan) Apply(v uint64) uint64 {
	switch p.Path {
	case Truncate:
		return v >> p.shift
	case Exact:
		return v * p.mult
	case ExactThenTruncate:
		hi, lo := bits.Mul64(v, p.mult)
		return lo>>p.shift | hi<<(64-p.shift)
	default:
		return v
	}
}

// repunit returns (2^o - 1) / (2^n - 1) for o a multiple of n, i.e. the
// sum of 2^(k*n) for k in [0, o/n).
func repunit(n, o uint) uint64 {
	var r uint64
	for k := uint(0); k < o; k += n {
		r |= uint64(1) << k
	}
	return r
}

// magnitude returns v as an unsigned magnitude; negative values saturate to
// zero.
func magnitude[S Integer](v S) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// Max returns the largest magnitude in src (0 for an empty slice).
func Max[S Integer](src []S) uint64 {
	var m uint64
	for _, v := range src {
		if u := magnitude(v); u > m {
			m = u
		}
	}
	return m
}

// Apply rescales src into dst with p. dst must be at least as long as src
// and may share storage with src. Negative source values are clamped to
// zero before scaling.
func Apply[D, S Integer](dst []D, src []S, p Plan) {
	dst = dst[:len(src)]
	switch p.Path {
	case Identity, Reinterpret:
		for i, v := range src {
			dst[i] = D(magnitude(v))
		}
	default:
		for i, v := range src {
			dst[i] = D(p.Apply(magnitude(v)))
		}
	}
}

// Scale rescales src from n to m bits into dst and returns the plan used.
func Scale[D, S Integer](dst []D, src []S, n, m uint) Plan {
	var max uint64
	if NeedsMax(n, m) {
		max = Max(src)
	}
	p := NewPlan(n, m, max)
	Apply(dst, src, p)
	return p
}

// Rescale rescales a in its own storage type. With copy set a new slice is
// always returned; otherwise a is updated in place and returned, including
// the identity case.
func Rescale[T Integer](a []T, n, m uint, copy bool) ([]T, Plan) {
	dst := a
	if copy {
		dst = make([]T, len(a))
	}
	if n == m && !copy {
		return a, NewPlan(n, m, 0)
	}
	return dst, Scale(dst, a, n, m)
}
