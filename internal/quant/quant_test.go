package quant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/dtype/internal/f16"
	"github.com/hupe1980/dtype/numeric"
)

func TestQuantizer_Nearest(t *testing.T) {
	tests := []struct {
		name string
		kind numeric.Kind
		in   float64
		want float64
	}{
		{"u8 one", numeric.Uint8, 1, 255},
		{"u8 zero", numeric.Uint8, 0, 0},
		{"u8 negative clips", numeric.Uint8, -0.5, 0},
		{"u8 0.999", numeric.Uint8, 0.999, 255},
		{"u8 half", numeric.Uint8, 0.5, 128},
		{"u8 small rounds up", numeric.Uint8, 0.002, 1},
		{"i8 one", numeric.Int8, 1, 127},
		{"i8 minus one", numeric.Int8, -1, -128},
		{"i8 zero", numeric.Int8, 0, 0},
		{"i16 one", numeric.Int16, 1, 32767},
		{"u64 one", numeric.Uint64, 1, float64(math.MaxUint64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuantizer(tt.kind, false)
			assert.False(t, q.Uniform())
			assert.Equal(t, tt.want, q.Apply(tt.in))
		})
	}
}

func TestQuantizer_Uniform(t *testing.T) {
	tests := []struct {
		name string
		kind numeric.Kind
		in   float64
		want float64
	}{
		{"u8 one clips", numeric.Uint8, 1, 255},
		{"u8 0.999", numeric.Uint8, 0.999, 255},
		{"u8 small floors", numeric.Uint8, 0.002, 0},
		{"u8 bucket edge", numeric.Uint8, 1.0 / 256, 1},
		{"i8 one clips", numeric.Int8, 1, 127},
		{"i8 minus one", numeric.Int8, -1, -128},
		{"i8 just below zero", numeric.Int8, -0.001, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuantizer(tt.kind, true)
			assert.True(t, q.Uniform())
			assert.Equal(t, tt.want, q.Apply(tt.in))
		})
	}
}

func TestQuantize_Saturates64Bit(t *testing.T) {
	u := make([]uint64, 2)
	Quantize(u, []float64{0, 1}, NewQuantizer(numeric.Uint64, false))
	assert.Equal(t, []uint64{0, math.MaxUint64}, u)

	i := make([]int64, 3)
	Quantize(i, []float64{-1, 0, 1}, NewQuantizer(numeric.Int64, false))
	assert.Equal(t, []int64{math.MinInt64, 0, math.MaxInt64}, i)
}

func TestQuantizeHalf(t *testing.T) {
	dst := make([]uint8, 3)
	QuantizeHalf(dst, []f16.Bits{f16.FromFloat64(-1), 0, f16.One}, NewQuantizer(numeric.Uint8, false))
	assert.Equal(t, []uint8{0, 0, 255}, dst)
}

func TestFirstOutside(t *testing.T) {
	assert.Equal(t, -1, FirstOutside([]float32{-1, 0, 1}))
	assert.Equal(t, 0, FirstOutside([]float64{1.5, 0}))
	assert.Equal(t, 1, FirstOutside([]float64{0, math.NaN()}))
	assert.Equal(t, 2, FirstOutside([]float32{0, 0.5, -1.0001}))
	assert.Equal(t, -1, FirstOutside([]float64{}))

	assert.Equal(t, -1, FirstOutsideHalf([]f16.Bits{f16.NegOne, f16.One}))
	assert.Equal(t, 1, FirstOutsideHalf([]f16.Bits{0, f16.FromFloat64(2)}))
}

func TestNormaliser(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		n := NewNormaliser(numeric.Uint8, true)
		assert.Equal(t, 0.0, n.Apply(0))
		assert.Equal(t, 1.0, n.Apply(255))
	})

	t.Run("signed boundaries are exact", func(t *testing.T) {
		for _, k := range []numeric.Kind{numeric.Int8, numeric.Int16, numeric.Int32, numeric.Int64} {
			n := NewNormaliser(k, true)
			assert.Equal(t, -1.0, n.Apply(float64(k.MinInt())), k.String())
			assert.Equal(t, 1.0, n.Apply(float64(k.MaxInt())), k.String())
		}
	})

	t.Run("disabled", func(t *testing.T) {
		n := NewNormaliser(numeric.Int16, false)
		assert.Equal(t, -300.0, n.Apply(-300))
	})
}

func TestNormalise(t *testing.T) {
	dst := make([]float32, 3)
	Normalise(dst, []int8{-128, 0, 127}, NewNormaliser(numeric.Int8, true))
	assert.Equal(t, float32(-1), dst[0])
	assert.InDelta(t, 1.0/255, dst[1], 1e-7)
	assert.Equal(t, float32(1), dst[2])

	h := make([]f16.Bits, 2)
	NormaliseHalf(h, []uint8{0, 255}, NewNormaliser(numeric.Uint8, true))
	assert.Equal(t, []f16.Bits{0, f16.One}, h)
}

func TestCast(t *testing.T) {
	d := make([]float32, 2)
	Cast(d, []float64{0.25, -1})
	assert.Equal(t, []float32{0.25, -1}, d)

	h := make([]f16.Bits, 2)
	ToHalf(h, []float32{1, -1})
	assert.Equal(t, []f16.Bits{f16.One, f16.NegOne}, h)

	back := make([]float64, 2)
	FromHalf(back, h)
	assert.Equal(t, []float64{1, -1}, back)
}
