package f16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   Bits
		want float64
	}{
		{"+0", 0x0000, 0},
		{"+1", One, 1},
		{"-1", NegOne, -1},
		{"0.5", 0x3800, 0.5},
		{"max", 0x7BFF, 65504},
		{"min subnormal", 0x0001, math.Ldexp(1, -24)},
		{"min normal", 0x0400, math.Ldexp(1, -14)},
		{"+Inf", 0x7C00, math.Inf(1)},
		{"-Inf", 0xFC00, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat64(tt.in))
		})
	}
}

func TestToFloat64_NegativeZero(t *testing.T) {
	got := ToFloat64(0x8000)
	assert.Equal(t, math.Float64bits(math.Copysign(0, -1)), math.Float64bits(got))
}

func TestNaN(t *testing.T) {
	assert.True(t, math.IsNaN(ToFloat64(0x7E00)))

	h := FromFloat64(math.NaN())
	assert.True(t, math.IsNaN(ToFloat64(h)), "encoding %04x", uint16(h))
}

func TestFromFloat64_Overflow(t *testing.T) {
	assert.Equal(t, Bits(0x7C00), FromFloat64(1e6))
	assert.Equal(t, Bits(0xFC00), FromFloat64(-1e6))
	assert.Equal(t, Bits(0x7C00), FromFloat64(math.Inf(1)))
	// 65520 is the midpoint between max finite and the next (infinite) step.
	assert.Equal(t, Bits(0x7C00), FromFloat64(65520))
	assert.Equal(t, Bits(0x7BFF), FromFloat64(65519))
}

func TestFromFloat64_Underflow(t *testing.T) {
	assert.Equal(t, Bits(0), FromFloat64(math.Ldexp(1, -30)))
	assert.Equal(t, Bits(0x8000), FromFloat64(-math.Ldexp(1, -30)))
	// Exactly half the smallest subnormal ties to even (zero).
	assert.Equal(t, Bits(0), FromFloat64(math.Ldexp(1, -25)))
	// Slightly above half rounds up.
	assert.Equal(t, Bits(1), FromFloat64(math.Ldexp(1.5, -25)))
	assert.Equal(t, Bits(3), FromFloat64(math.Ldexp(3, -24)))
}

func TestRoundTrip_AllFinite(t *testing.T) {
	for i := 0; i < 1<<16; i++ {
		h := Bits(i)
		if math.IsNaN(ToFloat64(h)) {
			continue
		}
		got := FromFloat64(ToFloat64(h))
		if got != h {
			t.Fatalf("h=%04x round-tripped to %04x", uint16(h), uint16(got))
		}
	}
}

func TestFromFloat64_RoundingTiesToEven(t *testing.T) {
	step := math.Ldexp(1, -10)

	// Halfway up from 1.0 (even mantissa) stays at 1.0.
	assert.Equal(t, One, FromFloat64(1+step/2))

	// Halfway with an odd lower neighbour rounds up.
	assert.Equal(t, Bits(0x3C02), FromFloat64(1+step+step/2))

	// Just above halfway always rounds up.
	assert.Equal(t, Bits(0x3C01), FromFloat64(1+step/2+1e-9))
}

func TestEncodeDecode_Slices(t *testing.T) {
	src := []float64{0, 1, -2, 65504, math.Inf(1), 0.333}
	h := make([]Bits, len(src))
	Encode(h, src)

	got := make([]float64, len(src))
	Decode(got, h)

	assert.Equal(t, []float64{0, 1, -2, 65504}, got[:4])
	assert.True(t, math.IsInf(got[4], 1))
	assert.InDelta(t, 0.333, got[5], math.Ldexp(1, -12))
}
