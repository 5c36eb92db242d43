package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSignedPlan(t *testing.T) {
	assert.Equal(t, Identity, NewSignedPlan(15, 15, -5, 5).Path)
	assert.Equal(t, Reinterpret, NewSignedPlan(15, 7, -128, 127).Path)
	assert.Equal(t, Truncate, NewSignedPlan(15, 7, -129, 0).Path)
	assert.Equal(t, Truncate, NewSignedPlan(15, 7, 0, 128).Path)
	// A large negative value must not slip through a max-only check.
	assert.Equal(t, Truncate, NewSignedPlan(15, 7, -1000, 5).Path)

	assert.Panics(t, func() { NewSignedPlan(7, 15, 0, 0) })
	assert.Panics(t, func() { NewSignedPlan(64, 7, 0, 0) })
}

func TestApplySigned(t *testing.T) {
	src := []int16{math.MinInt16, -257, -256, -1, 0, 255, 256, math.MaxInt16}
	dst := make([]int8, len(src))

	lo, hi := MinMax(src)
	p := NewSignedPlan(15, 7, lo, hi)
	ApplySigned(dst, src, p)
	assert.Equal(t, Truncate, p.Path)
	assert.Equal(t, []int8{-128, -2, -1, -1, 0, 0, 1, 127}, dst)
}

func TestApplySigned_Reinterpret(t *testing.T) {
	src := []int64{-128, 0, 127}
	dst := make([]int8, len(src))

	lo, hi := MinMax(src)
	p := NewSignedPlan(63, 7, lo, hi)
	ApplySigned(dst, src, p)
	assert.Equal(t, Reinterpret, p.Path)
	assert.Equal(t, []int8{-128, 0, 127}, dst)
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]int32{4, -9, 7})
	assert.Equal(t, int64(-9), lo)
	assert.Equal(t, int64(7), hi)

	lo, hi = MinMax([]int8{})
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestBias(t *testing.T) {
	assert.Equal(t, uint64(0), Bias(-128, 8))
	assert.Equal(t, uint64(128), Bias(0, 8))
	assert.Equal(t, uint64(255), Bias(127, 8))
	assert.Equal(t, uint64(0), Bias(math.MinInt64, 64))
	assert.Equal(t, uint64(math.MaxUint64), Bias(math.MaxInt64, 64))
}

func TestUnbias(t *testing.T) {
	assert.Equal(t, int64(math.MinInt16), Unbias(0, 16))
	assert.Equal(t, int64(math.MaxInt16), Unbias(math.MaxUint16, 16))
	assert.Equal(t, int64(math.MinInt64), Unbias(0, 64))
	assert.Equal(t, int64(math.MaxInt64), Unbias(math.MaxUint64, 64))
}

func TestSignedWidening_ThroughBias(t *testing.T) {
	src := []int8{math.MinInt8, -1, 0, math.MaxInt8}

	biased := make([]uint64, len(src))
	for i, v := range src {
		biased[i] = Bias(int64(v), 8)
	}
	out, p := Rescale(biased, 8, 16, false)
	assert.Equal(t, Exact, p.Path)
	assert.Same(t, &biased[0], &out[0], "rescaled in place")

	got := make([]int16, len(src))
	for i, u := range out {
		got[i] = int16(Unbias(u, 16))
	}
	// The affine map sends -1 and 0 to the buckets either side of zero.
	assert.Equal(t, []int16{math.MinInt16, -129, 128, math.MaxInt16}, got)
}
