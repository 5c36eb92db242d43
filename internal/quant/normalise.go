package quant

import (
	"github.com/hupe1980/dtype/internal/f16"
	"github.com/hupe1980/dtype/internal/scale"
	"github.com/hupe1980/dtype/numeric"
)

// Normaliser maps integer samples into the float convention.
//
// Unsigned kinds are divided by their maximum, so [0, max] -> [0, 1].
// Signed kinds use the symmetric affine map (2v + 1) / (max - min), which
// sends min to -1 and max to +1 exactly; no clamping is needed.
type Normaliser struct {
	mul, add, div float64
}

// NewNormaliser builds the normaliser for integer kind src. When enabled is
// false, values are cast without rescaling.
func NewNormaliser(src numeric.Kind, enabled bool) Normaliser {
	n := Normaliser{mul: 1, div: 1}
	if !enabled {
		return n
	}
	switch src.Class() {
	case numeric.Unsigned:
		n.div = float64(src.MaxUint())
	case numeric.Signed:
		n.mul, n.add = 2, 1
		n.div = float64(src.MaxInt()) - float64(src.MinInt())
	}
	return n
}

// Apply normalises a single value.
func (n Normaliser) Apply(v float64) float64 {
	return (v*n.mul + n.add) / n.div
}

// Normalise converts integer samples into float samples.
func Normalise[D Float, S scale.Integer](dst []D, src []S, n Normaliser) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = D(n.Apply(float64(v)))
	}
}

// NormaliseHalf converts integer samples into binary16 samples.
func NormaliseHalf[S scale.Integer](dst []f16.Bits, src []S, n Normaliser) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = f16.FromFloat64(n.Apply(float64(v)))
	}
}
