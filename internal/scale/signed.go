package scale

import (
	"fmt"
	"math"
)

// SignedPlan narrows two's-complement values from N to M magnitude bits
// (sign bit excluded on both ends).
type SignedPlan struct {
	N, M uint
	Path Path

	shift uint
}

// NewSignedPlan classifies narrowing of signed values from n to m magnitude
// bits. lo and hi are the smallest and largest input values; when they fit
// in [-2^m, 2^m-1] the values are kept as they are (Reinterpret), otherwise
// they are floor-divided by 2^(n-m). Widening is not a signed operation:
// bias the values with Bias, scale them with a Plan and undo the bias with
// Unbias.
func NewSignedPlan(n, m uint, lo, hi int64) SignedPlan {
	if m == 0 || n > 63 || m > n {
		panic(fmt.Sprintf("scale: invalid signed widths %d -> %d", n, m))
	}

	p := SignedPlan{N: n, M: m}
	bound := int64(1) << m
	switch {
	case n == m:
		p.Path = Identity
	case lo >= -bound && hi < bound:
		p.Path = Reinterpret
	default:
		p.Path = Truncate
		p.shift = n - m
	}
	return p
}

// Apply narrows a single value. The arithmetic shift is a floor division,
// so [-2^n, 2^n-1] maps onto [-2^m, 2^m-1].
func (p SignedPlan) Apply(v int64) int64 {
	if p.Path == Truncate {
		return v >> p.shift
	}
	return v
}

// MinMax returns the smallest and largest value of src read as int64.
// An empty slice yields (0, 0). src must hold a signed type.
func MinMax[S Integer](src []S) (lo, hi int64) {
	if len(src) == 0 {
		return 0, 0
	}
	lo, hi = math.MaxInt64, math.MinInt64
	for _, v := range src {
		x := int64(v)
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

// ApplySigned narrows src into dst with p. Both must hold signed types.
func ApplySigned[D, S Integer](dst []D, src []S, p SignedPlan) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = D(p.Apply(int64(v)))
	}
}

// Bias shifts a signed value with n total bits into [0, 2^n) by
// subtracting the type minimum -2^(n-1).
func Bias(v int64, n uint) uint64 {
	u := uint64(v) + uint64(1)<<(n-1)
	if n < 64 {
		u &= uint64(1)<<n - 1
	}
	return u
}

// Unbias maps u in [0, 2^m) back to a signed value with m total bits by
// adding the type minimum -2^(m-1).
func Unbias(u uint64, m uint) int64 {
	return int64(u - uint64(1)<<(m-1))
}
