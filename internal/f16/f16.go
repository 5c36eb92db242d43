// Package f16 implements IEEE-754 binary16 (float16) encoding/decoding.
//
// Samples of kind float16 are stored as raw bit patterns; all arithmetic on
// them happens in float64 and is rounded once on the way back.
package f16

import (
	"math"
)

// Bits is the raw IEEE-754 binary16 bit-pattern.
//
// Layout:
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
type Bits uint16

const (
	signMask Bits = 0x8000
	expMask  Bits = 0x7C00
	fracMask Bits = 0x03FF

	f64ExpMask  uint64 = 0x7FF0000000000000
	f64FracMask uint64 = 0x000FFFFFFFFFFFFF

	// fracShift is the number of float64 fraction bits dropped for binary16.
	fracShift = 52 - 10
)

// Common values.
const (
	One    Bits = 0x3C00
	NegOne Bits = 0xBC00
)

// ToFloat64 converts a binary16 bit-pattern to float64. The conversion is
// exact.
func ToFloat64(h Bits) float64 {
	sign := uint64(h&signMask) << 48
	exp := uint64(h&expMask) >> 10
	frac := uint64(h & fracMask)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float64frombits(sign)
		}
		// Subnormal: value = frac * 2^-24.
		v := math.Ldexp(float64(frac), -24)
		if sign != 0 {
			return -v
		}
		return v
	case 0x1F:
		if frac == 0 {
			return math.Float64frombits(sign | f64ExpMask)
		}
		return math.Float64frombits(sign | f64ExpMask | (frac << fracShift))
	default:
		e := (exp - 15 + 1023) << 52
		return math.Float64frombits(sign | e | (frac << fracShift))
	}
}

// FromFloat64 converts a float64 value into a binary16 bit-pattern.
//
// Rounding mode: round-to-nearest, ties-to-even. Values beyond the binary16
// range become infinities.
func FromFloat64(f float64) Bits {
	bits := math.Float64bits(f)
	sign := Bits((bits >> 48) & uint64(signMask))
	exp := int64((bits & f64ExpMask) >> 52)
	frac := bits & f64FracMask

	if exp == 0x7FF {
		if frac == 0 {
			return sign | expMask
		}
		// Keep a quiet, non-zero payload.
		payload := Bits(frac >> fracShift)
		payload |= 0x0200
		return sign | expMask | (payload & fracMask)
	}

	// float64 subnormals are far below the binary16 range.
	if exp == 0 {
		return sign
	}

	e16 := exp - 1023 + 15

	if e16 >= 0x1F {
		return sign | expMask
	}

	if e16 <= 0 {
		if e16 < -10 {
			return sign
		}
		mant := frac | (uint64(1) << 52)
		shift := uint64(1-e16) + fracShift
		m := mant >> shift
		rem := mant & ((uint64(1) << shift) - 1)
		half := uint64(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		// A carry into bit 10 yields the smallest normal, which is the
		// correct encoding.
		return sign | Bits(m)
	}

	m := frac >> fracShift
	rem := frac & ((uint64(1) << fracShift) - 1)
	half := uint64(1) << (fracShift - 1)
	if rem > half || (rem == half && m&1 == 1) {
		m++
		if m == 0x0400 {
			m = 0
			e16++
			if e16 >= 0x1F {
				return sign | expMask
			}
		}
	}

	return sign | Bits(uint64(e16)<<10) | Bits(m)
}

// Decode converts a slice of binary16 bit-patterns to float64.
// dst must have length >= len(src).
func Decode(dst []float64, src []Bits) {
	for i := range src {
		dst[i] = ToFloat64(src[i])
	}
}

// Encode converts a slice of float64 to binary16.
// dst must have length >= len(src).
func Encode(dst []Bits, src []float64) {
	for i := range src {
		dst[i] = FromFloat64(src[i])
	}
}
