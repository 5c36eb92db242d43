// Package quant maps normalised float samples to integers and back.
//
// Float samples live in [-1, 1]. Quantizer maps them onto an integer kind's
// interval using either round-to-nearest (minimal round-trip error) or
// uniform buckets (floor). Normaliser maps integer samples back into the
// float convention. All arithmetic is done in float64 and rounded once when
// stored.
package quant

import (
	"math"

	"github.com/hupe1980/dtype/internal/conv"
	"github.com/hupe1980/dtype/internal/f16"
	"github.com/hupe1980/dtype/internal/scale"
	"github.com/hupe1980/dtype/numeric"
)

// Float is the set of native float storage types.
type Float interface {
	~float32 | ~float64
}

// Quantizer maps values in [-1, 1] onto an integer interval.
//
// The value stored is clip(round((v*mul + add) / div), lo, hi) where round
// is round-half-to-even for the default policy and floor for the uniform
// one.
type Quantizer struct {
	mul, add, div float64
	lo, hi        float64
	uniform       bool
}

// NewQuantizer builds the quantizer for integer kind dst.
func NewQuantizer(dst numeric.Kind, uniform bool) Quantizer {
	lo, hi := float64(dst.MinInt()), float64(dst.MaxUint())
	q := Quantizer{lo: lo, hi: hi, div: 1, uniform: uniform}

	signed := dst.Class() == numeric.Signed
	switch {
	case !uniform && !signed:
		q.mul = hi
	case !uniform && signed:
		// Symmetric split of the range: -1 -> min, 1 -> max.
		q.mul, q.add, q.div = hi-lo, -1, 2
	case uniform && !signed:
		q.mul = hi + 1
	default:
		q.mul, q.div = hi-lo+1, 2
	}
	return q
}

// Uniform reports whether q uses uniform (floor) buckets.
func (q Quantizer) Uniform() bool { return q.uniform }

// Apply returns the clipped integer value of v as float64.
func (q Quantizer) Apply(v float64) float64 {
	y := (v*q.mul + q.add) / q.div
	if q.uniform {
		y = math.Floor(y)
	} else {
		y = math.RoundToEven(y)
	}
	return min(max(y, q.lo), q.hi)
}

// fromFloat stores an already clipped integral value in D.
func fromFloat[D scale.Integer](y float64) D {
	var zero D
	if zero-1 > 0 {
		return D(conv.SaturateUint64(y))
	}
	return D(conv.SaturateInt64(y))
}

// Quantize maps src into dst with q.
func Quantize[D scale.Integer, S Float](dst []D, src []S, q Quantizer) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = fromFloat[D](q.Apply(float64(v)))
	}
}

// QuantizeHalf maps binary16 samples into dst with q.
func QuantizeHalf[D scale.Integer](dst []D, src []f16.Bits, q Quantizer) {
	dst = dst[:len(src)]
	for i, h := range src {
		dst[i] = fromFloat[D](q.Apply(f16.ToFloat64(h)))
	}
}

// FirstOutside returns the index of the first value of src outside
// [-1, 1] (NaN included), or -1.
func FirstOutside[S Float](src []S) int {
	for i, v := range src {
		if !(v >= -1 && v <= 1) {
			return i
		}
	}
	return -1
}

// FirstOutsideHalf is FirstOutside for binary16 samples.
func FirstOutsideHalf(src []f16.Bits) int {
	for i, h := range src {
		v := f16.ToFloat64(h)
		if !(v >= -1 && v <= 1) {
			return i
		}
	}
	return -1
}
