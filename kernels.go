package dtype

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/dtype/internal/conv"
	"github.com/hupe1980/dtype/internal/f16"
	"github.com/hupe1980/dtype/internal/parallel"
	"github.com/hupe1980/dtype/internal/quant"
	"github.com/hupe1980/dtype/internal/scale"
	"github.com/hupe1980/dtype/numeric"
	"github.com/hupe1980/dtype/sample"
)

type integer interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64
}

type float interface {
	float32 | float64
}

// tiled runs fn over matching tiles of dst and src.
func tiled[D, S any](workers int, dst []D, src []S, fn func([]D, []S)) {
	parallel.For(len(src), workers, func(t parallel.Tile) {
		fn(dst[t.Lo:t.Hi], src[t.Lo:t.Hi])
	})
}

func negativeIndices[S any](src []S, workers int, neg func(S) bool) (*roaring.Bitmap, bool) {
	if _, ok := conv.Index32(len(src) - 1); !ok && len(src) > 0 {
		// Positions do not fit 32 bits; only report whether any exist.
		for _, v := range src {
			if neg(v) {
				return nil, true
			}
		}
		return nil, false
	}

	parts := parallel.Map(len(src), workers, func(t parallel.Tile) *roaring.Bitmap {
		rb := roaring.New()
		for i := t.Lo; i < t.Hi; i++ {
			if neg(src[i]) {
				rb.Add(uint32(i))
			}
		}
		return rb
	})
	if len(parts) == 0 {
		return roaring.New(), false
	}
	rb := roaring.FastOr(parts...)
	return rb, !rb.IsEmpty()
}

// toBool thresholds samples strictly above the midpoint of the source range.
func (j *job) toBool() *sample.Array {
	if c := j.src.Class(); c == numeric.Signed || c == numeric.Float {
		positions, _ := j.negatives()
		j.signLoss(positions)
	}
	j.emit(PrecisionLoss)

	out := make([]bool, j.in.Len())
	switch s := j.in.Raw().(type) {
	case []uint8:
		threshold(j.workers, out, s, midpoint[uint8](j.src))
	case []uint16:
		threshold(j.workers, out, s, midpoint[uint16](j.src))
	case []uint32:
		threshold(j.workers, out, s, midpoint[uint32](j.src))
	case []uint64:
		threshold(j.workers, out, s, midpoint[uint64](j.src))
	case []int8:
		threshold(j.workers, out, s, midpoint[int8](j.src))
	case []int16:
		threshold(j.workers, out, s, midpoint[int16](j.src))
	case []int32:
		threshold(j.workers, out, s, midpoint[int32](j.src))
	case []int64:
		threshold(j.workers, out, s, midpoint[int64](j.src))
	case []float32:
		threshold(j.workers, out, s, 0)
	case []float64:
		threshold(j.workers, out, s, 0)
	case []sample.Float16:
		tiled(j.workers, out, s, func(d []bool, s []f16.Bits) {
			for i, h := range s {
				d[i] = f16.ToFloat64(h) > 0
			}
		})
	}
	return sample.Like(j.in, out)
}

// midpoint returns (min+max)/2 of integer kind k, truncated toward zero as
// a value of the source type: 127 for uint8, 0 for every signed kind.
func midpoint[S integer](k numeric.Kind) S {
	if k.Class() == numeric.Signed {
		return S((k.MinInt() + k.MaxInt()) / 2)
	}
	return S(k.MaxUint() / 2)
}

func threshold[S integer | float](workers int, dst []bool, src []S, t S) {
	tiled(workers, dst, src, func(d []bool, s []S) {
		for i, v := range s {
			d[i] = v > t
		}
	})
}

// fromBool maps false to 0 and true to the destination maximum (1.0 for
// floats).
func (j *job) fromBool() *sample.Array {
	src, _ := sample.Data[bool](j.in)
	switch j.dst {
	case numeric.Uint8:
		return fill(j, src, uint8(math.MaxUint8))
	case numeric.Uint16:
		return fill(j, src, uint16(math.MaxUint16))
	case numeric.Uint32:
		return fill(j, src, uint32(math.MaxUint32))
	case numeric.Uint64:
		return fill(j, src, uint64(math.MaxUint64))
	case numeric.Int8:
		return fill(j, src, int8(math.MaxInt8))
	case numeric.Int16:
		return fill(j, src, int16(math.MaxInt16))
	case numeric.Int32:
		return fill(j, src, int32(math.MaxInt32))
	case numeric.Int64:
		return fill(j, src, int64(math.MaxInt64))
	case numeric.Float16:
		return fill(j, src, f16.One)
	case numeric.Float32:
		return fill(j, src, float32(1))
	default:
		return fill(j, src, float64(1))
	}
}

func fill[D sample.Element](j *job, src []bool, on D) *sample.Array {
	out := make([]D, len(src))
	tiled(j.workers, out, src, func(d []D, s []bool) {
		for i, v := range s {
			if v {
				d[i] = on
			}
		}
	})
	return sample.Like(j.in, out)
}

// floatToFloat casts between float widths.
func (j *job) floatToFloat() *sample.Array {
	if j.dst.Mantissa() < j.src.Mantissa() {
		j.emit(PrecisionLoss)
	}
	switch s := j.in.Raw().(type) {
	case []float32:
		return castFrom(j, s)
	case []float64:
		return castFrom(j, s)
	default:
		src := s.([]sample.Float16)
		if j.dst == numeric.Float32 {
			return castInto(j, src, quant.FromHalf[float32])
		}
		return castInto(j, src, quant.FromHalf[float64])
	}
}

func castFrom[S float](j *job, src []S) *sample.Array {
	switch j.dst {
	case numeric.Float16:
		return castInto(j, src, quant.ToHalf[S])
	case numeric.Float32:
		return castInto(j, src, quant.Cast[float32, S])
	default:
		return castInto(j, src, quant.Cast[float64, S])
	}
}

func castInto[D sample.Element, S any](j *job, src []S, fn func([]D, []S)) *sample.Array {
	out := make([]D, len(src))
	tiled(j.workers, out, src, fn)
	return sample.Like(j.in, out)
}

// floatToInt quantizes normalised float samples. The range has already
// been checked.
func (j *job) floatToInt() *sample.Array {
	if j.dst.Class() == numeric.Unsigned {
		if positions, found := j.negatives(); found {
			j.signLoss(positions)
		}
	}
	j.emit(PrecisionLoss)

	q := quant.NewQuantizer(j.dst, j.opts.uniform)
	switch s := j.in.Raw().(type) {
	case []float32:
		return quantizeFrom(j, s, q)
	case []float64:
		return quantizeFrom(j, s, q)
	default:
		return quantizeFromHalf(j, s.([]sample.Float16), q)
	}
}

func quantizeFrom[S float](j *job, src []S, q quant.Quantizer) *sample.Array {
	switch j.dst {
	case numeric.Uint8:
		return quantizeInto[uint8](j, src, q)
	case numeric.Uint16:
		return quantizeInto[uint16](j, src, q)
	case numeric.Uint32:
		return quantizeInto[uint32](j, src, q)
	case numeric.Uint64:
		return quantizeInto[uint64](j, src, q)
	case numeric.Int8:
		return quantizeInto[int8](j, src, q)
	case numeric.Int16:
		return quantizeInto[int16](j, src, q)
	case numeric.Int32:
		return quantizeInto[int32](j, src, q)
	default:
		return quantizeInto[int64](j, src, q)
	}
}

func quantizeInto[D integer, S float](j *job, src []S, q quant.Quantizer) *sample.Array {
	return castInto(j, src, func(d []D, s []S) { quant.Quantize(d, s, q) })
}

func quantizeFromHalf(j *job, src []f16.Bits, q quant.Quantizer) *sample.Array {
	switch j.dst {
	case numeric.Uint8:
		return quantizeHalfInto[uint8](j, src, q)
	case numeric.Uint16:
		return quantizeHalfInto[uint16](j, src, q)
	case numeric.Uint32:
		return quantizeHalfInto[uint32](j, src, q)
	case numeric.Uint64:
		return quantizeHalfInto[uint64](j, src, q)
	case numeric.Int8:
		return quantizeHalfInto[int8](j, src, q)
	case numeric.Int16:
		return quantizeHalfInto[int16](j, src, q)
	case numeric.Int32:
		return quantizeHalfInto[int32](j, src, q)
	default:
		return quantizeHalfInto[int64](j, src, q)
	}
}

func quantizeHalfInto[D integer](j *job, src []f16.Bits, q quant.Quantizer) *sample.Array {
	return castInto(j, src, func(d []D, s []f16.Bits) { quant.QuantizeHalf(d, s, q) })
}

// intToFloat converts integer samples to floats, normalised unless
// disabled.
func (j *job) intToFloat() *sample.Array {
	exact := numeric.ExactFloat(j.src)
	if j.dst.Mantissa() < exact.Mantissa() || j.src.Magnitude() > exact.Mantissa() {
		j.emit(PrecisionLoss)
	}

	n := quant.NewNormaliser(j.src, j.opts.normalise)
	switch s := j.in.Raw().(type) {
	case []uint8:
		return normaliseFrom(j, s, n)
	case []uint16:
		return normaliseFrom(j, s, n)
	case []uint32:
		return normaliseFrom(j, s, n)
	case []uint64:
		return normaliseFrom(j, s, n)
	case []int8:
		return normaliseFrom(j, s, n)
	case []int16:
		return normaliseFrom(j, s, n)
	case []int32:
		return normaliseFrom(j, s, n)
	default:
		return normaliseFrom(j, s.([]int64), n)
	}
}

func normaliseFrom[S integer](j *job, src []S, n quant.Normaliser) *sample.Array {
	switch j.dst {
	case numeric.Float16:
		return castInto(j, src, func(d []f16.Bits, s []S) { quant.NormaliseHalf(d, s, n) })
	case numeric.Float32:
		return castInto(j, src, func(d []float32, s []S) { quant.Normalise(d, s, n) })
	default:
		return castInto(j, src, func(d []float64, s []S) { quant.Normalise(d, s, n) })
	}
}

// integer converts between integer kinds through the range scaler.
func (j *job) integer() *sample.Array {
	switch s := j.in.Raw().(type) {
	case []uint8:
		return integerFrom(j, s)
	case []uint16:
		return integerFrom(j, s)
	case []uint32:
		return integerFrom(j, s)
	case []uint64:
		return integerFrom(j, s)
	case []int8:
		return integerFrom(j, s)
	case []int16:
		return integerFrom(j, s)
	case []int32:
		return integerFrom(j, s)
	default:
		return integerFrom(j, s.([]int64))
	}
}

func integerFrom[S integer](j *job, src []S) *sample.Array {
	switch j.dst {
	case numeric.Uint8:
		return integerInto[uint8](j, src)
	case numeric.Uint16:
		return integerInto[uint16](j, src)
	case numeric.Uint32:
		return integerInto[uint32](j, src)
	case numeric.Uint64:
		return integerInto[uint64](j, src)
	case numeric.Int8:
		return integerInto[int8](j, src)
	case numeric.Int16:
		return integerInto[int16](j, src)
	case numeric.Int32:
		return integerInto[int32](j, src)
	default:
		return integerInto[int64](j, src)
	}
}

func integerInto[D, S integer](j *job, src []S) *sample.Array {
	out := make([]D, len(src))
	n, m := j.src.Bits(), j.dst.Bits()

	switch j.route {
	case routeUnsignedToUnsigned:
		scaleInto(j, out, src, n, m)
	case routeUnsignedToSigned:
		// Reserve the sign bit; the scaled values are non-negative.
		scaleInto(j, out, src, n, m-1)
	case routeSignedToUnsigned:
		positions, _ := j.negatives()
		j.signLoss(positions)
		scaleInto(j, out, src, n-1, m)
	default:
		if n > m {
			narrowInto(j, out, src, n-1, m-1)
		} else {
			widenInto(j, out, src, n, m)
		}
	}
	return sample.Like(j.in, out)
}

// scaleInto rescales non-negative magnitudes; negative samples clamp to 0.
func scaleInto[D, S integer](j *job, dst []D, src []S, n, m uint) {
	var hi uint64
	if scale.NeedsMax(n, m) {
		for _, v := range parallel.Map(len(src), j.workers, func(t parallel.Tile) uint64 {
			return scale.Max(src[t.Lo:t.Hi])
		}) {
			hi = max(hi, v)
		}
	}
	p := scale.NewPlan(n, m, hi)
	j.path(p.Path)
	tiled(j.workers, dst, src, func(d []D, s []S) { scale.Apply(d, s, p) })
}

type bounds struct{ lo, hi int64 }

// narrowInto narrows signed samples on their magnitude bits.
func narrowInto[D, S integer](j *job, dst []D, src []S, n, m uint) {
	parts := parallel.Map(len(src), j.workers, func(t parallel.Tile) bounds {
		lo, hi := scale.MinMax(src[t.Lo:t.Hi])
		return bounds{lo, hi}
	})
	var b bounds
	for i, p := range parts {
		if i == 0 {
			b = p
			continue
		}
		b.lo, b.hi = min(b.lo, p.lo), max(b.hi, p.hi)
	}

	p := scale.NewSignedPlan(n, m, b.lo, b.hi)
	j.path(p.Path)
	tiled(j.workers, dst, src, func(d []D, s []S) { scale.ApplySigned(d, s, p) })
}

// widenInto widens signed samples: shift by the source minimum into the
// unsigned domain, rescale on full widths in place, shift back by the
// destination minimum.
func widenInto[D, S integer](j *job, dst []D, src []S, n, m uint) {
	j.path(scale.NewPlan(n, m, 0).Path)
	tiled(j.workers, dst, src, func(d []D, s []S) {
		biased := make([]uint64, len(s))
		for i, v := range s {
			biased[i] = scale.Bias(int64(v), n)
		}
		biased, _ = scale.Rescale(biased, n, m, false)
		for i, u := range biased {
			d[i] = D(scale.Unbias(u, m))
		}
	})
}
