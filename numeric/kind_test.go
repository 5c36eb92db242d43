package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeOf(t *testing.T) {
	tests := []struct {
		kind     Kind
		min, max float64
	}{
		{Bool, 0, 1},
		{Uint8, 0, 255},
		{Uint16, 0, 65535},
		{Uint32, 0, math.MaxUint32},
		{Uint64, 0, math.MaxUint64},
		{Int8, -128, 127},
		{Int16, -32768, 32767},
		{Int32, math.MinInt32, math.MaxInt32},
		{Int64, math.MinInt64, math.MaxInt64},
		{Float16, -1, 1},
		{Float32, -1, 1},
		{Float64, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			d, err := RangeOf(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.min, d.Min)
			assert.Equal(t, tt.max, d.Max)
		})
	}
}

func TestRangeOf_Unsupported(t *testing.T) {
	for _, k := range []Kind{Invalid, numKinds, Kind(200)} {
		_, err := RangeOf(k)
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.False(t, IsSupported(k))
	}
}

func TestIntegerBounds(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), Uint64.MaxUint())
	assert.Equal(t, uint64(math.MaxInt64), Int64.MaxUint())
	assert.Equal(t, int64(math.MaxInt64), Uint64.MaxInt())
	assert.Equal(t, int64(math.MinInt64), Int64.MinInt())
	assert.Equal(t, int64(-128), Int8.MinInt())
	assert.Equal(t, int64(0), Uint16.MinInt())
	assert.Equal(t, uint64(1), Bool.MaxUint())
}

func TestMagnitudeAndMantissa(t *testing.T) {
	assert.Equal(t, uint(8), Uint8.Magnitude())
	assert.Equal(t, uint(7), Int8.Magnitude())
	assert.Equal(t, uint(63), Int64.Magnitude())
	assert.Equal(t, uint(11), Float16.Mantissa())
	assert.Equal(t, uint(24), Float32.Mantissa())
	assert.Equal(t, uint(53), Float64.Mantissa())
	assert.Zero(t, Int32.Mantissa())
}

func TestExactFloat(t *testing.T) {
	tests := map[Kind]Kind{
		Uint8:  Float16,
		Int8:   Float16,
		Uint16: Float32,
		Int16:  Float32,
		Uint32: Float64,
		Int32:  Float64,
		Uint64: Float64,
		Int64:  Float64,
	}
	for in, want := range tests {
		assert.Equal(t, want, ExactFloat(in), in.String())
	}
}

func TestParse(t *testing.T) {
	for _, k := range Kinds() {
		got, err := Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)

		got, err = Parse(table[k].short)
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := Parse(" Bool8 ")
	require.NoError(t, err)
	assert.Equal(t, Bool, got)

	_, err = Parse("complex64")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	assert.Panics(t, func() { MustParse("uint128") })
}

func TestClassAndItemSize(t *testing.T) {
	assert.Equal(t, Float, Float16.Class())
	assert.Equal(t, Signed, Int32.Class())
	assert.Equal(t, Unsigned, Uint64.Class())
	assert.Equal(t, Boolean, Bool.Class())
	assert.Equal(t, Class(0), Invalid.Class())
	assert.Equal(t, 2, Float16.ItemSize())
	assert.Equal(t, 1, Bool.ItemSize())
	assert.True(t, Int8.IsInteger())
	assert.False(t, Float32.IsInteger())
	assert.Equal(t, "Kind(0)", Invalid.String())
	assert.Len(t, Kinds(), 12)
}
