package dtype

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/dtype/internal/f16"
	"github.com/hupe1980/dtype/internal/parallel"
	"github.com/hupe1980/dtype/internal/quant"
	"github.com/hupe1980/dtype/internal/scale"
	"github.com/hupe1980/dtype/numeric"
	"github.com/hupe1980/dtype/sample"
)

// job is the state of a single non-identity conversion.
type job struct {
	in       *sample.Array
	src, dst numeric.Kind
	route    route
	opts     options
	workers  int
	diags    []Diagnostic
}

func (j *job) run() (*sample.Array, error) {
	if j.src.Class() == numeric.Float && j.dst.Class() != numeric.Float {
		if err := j.checkRange(); err != nil {
			return nil, err
		}
	}

	switch j.route {
	case routeToBool:
		return j.toBool(), nil
	case routeFromBool:
		return j.fromBool(), nil
	case routeFloatToFloat:
		return j.floatToFloat(), nil
	case routeFloatToInt:
		return j.floatToInt(), nil
	case routeIntToFloat:
		return j.intToFloat(), nil
	default:
		return j.integer(), nil
	}
}

func (j *job) emit(kind DiagnosticKind) {
	j.diags = append(j.diags, Diagnostic{Kind: kind, Source: j.src, Destination: j.dst})
}

func (j *job) signLoss(positions *roaring.Bitmap) {
	j.diags = append(j.diags, Diagnostic{Kind: SignLoss, Source: j.src, Destination: j.dst, Positions: positions})
}

// path reports the diagnostics of an integer rescaling path.
func (j *job) path(p scale.Path) {
	switch {
	case p == scale.Reinterpret:
		j.emit(DowncastWithoutScaling)
	case p.Lossy():
		j.emit(PrecisionLoss)
	}
}

// checkRange rejects float samples outside [-1, 1].
func (j *job) checkRange() error {
	var idx int
	switch s := j.in.Raw().(type) {
	case []float32:
		idx = firstOutside(s, j.workers, quant.FirstOutside[float32])
	case []float64:
		idx = firstOutside(s, j.workers, quant.FirstOutside[float64])
	case []sample.Float16:
		idx = firstOutside(s, j.workers, quant.FirstOutsideHalf)
	default:
		return nil
	}
	if idx < 0 {
		return nil
	}
	return &OutOfRangeError{Source: j.src, Destination: j.dst, Index: idx, Value: j.in.Float64At(idx)}
}

func firstOutside[S any](src []S, workers int, find func([]S) int) int {
	hits := parallel.Map(len(src), workers, func(t parallel.Tile) int {
		if i := find(src[t.Lo:t.Hi]); i >= 0 {
			return t.Lo + i
		}
		return -1
	})
	for _, i := range hits {
		if i >= 0 {
			return i
		}
	}
	return -1
}

// negatives returns the positions of negative samples of a signed or float
// array, and whether any exist.
func (j *job) negatives() (*roaring.Bitmap, bool) {
	switch s := j.in.Raw().(type) {
	case []int8:
		return negativeIndices(s, j.workers, isNegative[int8])
	case []int16:
		return negativeIndices(s, j.workers, isNegative[int16])
	case []int32:
		return negativeIndices(s, j.workers, isNegative[int32])
	case []int64:
		return negativeIndices(s, j.workers, isNegative[int64])
	case []float32:
		return negativeIndices(s, j.workers, isNegative[float32])
	case []float64:
		return negativeIndices(s, j.workers, isNegative[float64])
	case []sample.Float16:
		return negativeIndices(s, j.workers, func(h f16.Bits) bool { return f16.ToFloat64(h) < 0 })
	default:
		return roaring.New(), false
	}
}

func isNegative[S integer | float](v S) bool { return v < 0 }
