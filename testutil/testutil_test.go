package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dtype/numeric"
	"github.com/hupe1980/dtype/sample"
)

func TestArray(t *testing.T) {
	rng := NewRNG(4711)

	for _, k := range numeric.Kinds() {
		a := rng.Array(k, 64)

		assert.Equal(t, k, a.Kind())
		assert.Equal(t, 64, a.Len())

		d, err := numeric.RangeOf(k)
		require.NoError(t, err)
		for _, v := range a.Float64s() {
			assert.GreaterOrEqual(t, v, d.Min)
			assert.LessOrEqual(t, v, d.Max)
		}
	}
}

func TestArray_Boundaries(t *testing.T) {
	rng := NewRNG(4711)

	u8, _ := sample.Data[uint8](rng.Array(numeric.Uint8, 8))
	assert.Equal(t, []uint8{0, 255}, u8[:2])

	i64, _ := sample.Data[int64](rng.Array(numeric.Int64, 8))
	assert.Equal(t, int64(-1<<63), i64[0])
	assert.Equal(t, int64(1<<63-1), i64[1])

	h := rng.Array(numeric.Float16, 8).Float64s()
	assert.Equal(t, []float64{-1, 1, 0}, h[:3])

	f64, _ := sample.Data[float64](rng.Array(numeric.Float64, 8))
	assert.Equal(t, []float64{-1, 1, 0}, f64[:3])
}

func TestArray_ShortArrays(t *testing.T) {
	rng := NewRNG(1)
	assert.Equal(t, 1, rng.Array(numeric.Int8, 1).Len())
	assert.Equal(t, 0, rng.Array(numeric.Float32, 0).Len())
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	a := rng.Array(numeric.Uint32, 16)
	rng.Reset()
	b := rng.Array(numeric.Uint32, 16)

	assert.True(t, sample.Equal(a, b))
	assert.Equal(t, int64(42), rng.Seed())
}
