package numeric

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnsupportedType is returned for kinds outside the supported set.
var ErrUnsupportedType = errors.New("unsupported sample type")

// Class is the coarse numeric category of a Kind.
type Class uint8

const (
	// Boolean samples are either 0 or 1.
	Boolean Class = iota + 1
	// Unsigned samples are non-negative integers.
	Unsigned
	// Signed samples are two's-complement integers.
	Signed
	// Float samples are IEEE-754 numbers normalised to [-1, 1].
	Float
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Boolean:
		return "bool"
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Kind identifies a sample representation (class plus storage width).
type Kind uint8

// Supported kinds. The zero value is Invalid.
const (
	Invalid Kind = iota
	Bool
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float16
	Float32
	Float64

	numKinds
)

// Descriptor is a Kind together with its representable closed interval.
type Descriptor struct {
	Kind Kind
	Min  float64
	Max  float64
}

type entry struct {
	name     string
	short    string
	class    Class
	bits     uint
	mantissa uint // significant bits, floats only
}

var table = [numKinds]entry{
	Bool:    {"bool", "b1", Boolean, 8, 0},
	Uint8:   {"uint8", "u8", Unsigned, 8, 0},
	Uint16:  {"uint16", "u16", Unsigned, 16, 0},
	Uint32:  {"uint32", "u32", Unsigned, 32, 0},
	Uint64:  {"uint64", "u64", Unsigned, 64, 0},
	Int8:    {"int8", "i8", Signed, 8, 0},
	Int16:   {"int16", "i16", Signed, 16, 0},
	Int32:   {"int32", "i32", Signed, 32, 0},
	Int64:   {"int64", "i64", Signed, 64, 0},
	Float16: {"float16", "f16", Float, 16, 11},
	Float32: {"float32", "f32", Float, 32, 24},
	Float64: {"float64", "f64", Float, 64, 53},
}

// IsSupported reports whether k is one of the supported kinds.
func IsSupported(k Kind) bool {
	return k > Invalid && k < numKinds
}

// RangeOf returns the descriptor of k.
func RangeOf(k Kind) (Descriptor, error) {
	if !IsSupported(k) {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnsupportedType, k)
	}
	d := Descriptor{Kind: k}
	switch k.Class() {
	case Boolean:
		d.Min, d.Max = 0, 1
	case Unsigned:
		d.Min, d.Max = 0, float64(k.MaxUint())
	case Signed:
		d.Min, d.Max = float64(k.MinInt()), float64(k.MaxInt())
	case Float:
		d.Min, d.Max = -1, 1
	}
	return d, nil
}

// Parse resolves a kind from its long ("uint16") or short ("u16") name.
// "bool8" is accepted as an alias of bool.
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "bool8" || n == "bool_" {
		return Bool, nil
	}
	for k := Bool; k < numKinds; k++ {
		if table[k].name == n || table[k].short == n {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// MustParse is like Parse but panics on unknown names.
func MustParse(name string) Kind {
	k, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns the long name of k.
func (k Kind) String() string {
	if !IsSupported(k) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return table[k].name
}

// Class returns the category of k, or 0 for unsupported kinds.
func (k Kind) Class() Class {
	if !IsSupported(k) {
		return 0
	}
	return table[k].class
}

// Bits returns the storage width in bits.
func (k Kind) Bits() uint {
	if !IsSupported(k) {
		return 0
	}
	return table[k].bits
}

// ItemSize returns the storage width in bytes.
func (k Kind) ItemSize() int {
	return int(k.Bits() / 8)
}

// Magnitude returns the number of bits available for an integer's
// magnitude: the full width for unsigned kinds and one less for signed ones.
func (k Kind) Magnitude() uint {
	switch k.Class() {
	case Unsigned:
		return k.Bits()
	case Signed:
		return k.Bits() - 1
	case Boolean:
		return 1
	default:
		return 0
	}
}

// Mantissa returns the number of significant bits of a float kind
// (including the implicit leading bit), or 0 for other kinds.
func (k Kind) Mantissa() uint {
	if !IsSupported(k) {
		return 0
	}
	return table[k].mantissa
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	c := k.Class()
	return c == Unsigned || c == Signed
}

// MaxUint returns the largest value of an unsigned or signed kind as uint64.
func (k Kind) MaxUint() uint64 {
	switch k.Class() {
	case Boolean:
		return 1
	case Unsigned:
		return math.MaxUint64 >> (64 - k.Bits())
	case Signed:
		return math.MaxUint64 >> (65 - k.Bits())
	default:
		return 0
	}
}

// MaxInt returns the largest value of an integer kind, saturated to int64.
func (k Kind) MaxInt() int64 {
	m := k.MaxUint()
	if m > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(m)
}

// MinInt returns the smallest value of an integer kind (0 for unsigned).
func (k Kind) MinInt() int64 {
	if k.Class() != Signed {
		return 0
	}
	return -1 << (k.Bits() - 1)
}

// ExactFloat returns the smallest float kind that represents every value
// of integer kind k exactly. 64-bit integers exceed every float mantissa,
// for them Float64 is returned even though it is not exact.
func ExactFloat(k Kind) Kind {
	need := k.Magnitude()
	for _, f := range []Kind{Float16, Float32, Float64} {
		if f.Mantissa() >= need {
			return f
		}
	}
	return Float64
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := Bool; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}
