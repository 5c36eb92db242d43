// Package sample provides shape-preserving homogeneous arrays of samples.
//
// An Array stores its elements row-major in a typed Go slice; the element
// type determines its numeric.Kind:
//
//	a, _ := sample.New([]uint8{0, 128, 255, 64}, 2, 2)
//	a.Kind()  // numeric.Uint8
//	a.Shape() // [2 2]
//
// Float16 samples are stored as raw IEEE-754 binary16 patterns.
package sample

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/hupe1980/dtype/internal/conv"
	"github.com/hupe1980/dtype/internal/f16"
	"github.com/hupe1980/dtype/numeric"
)

// ErrShapeMismatch is returned when a shape does not describe the data.
var ErrShapeMismatch = errors.New("shape does not match data length")

// Float16 is an IEEE-754 binary16 sample.
type Float16 = f16.Bits

// Element is the set of Go types an Array can hold.
type Element interface {
	bool | uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | Float16 | float32 | float64
}

// Array is an n-dimensional array of samples of a single kind.
type Array struct {
	kind  numeric.Kind
	shape []int
	data  any
}

// KindOf returns the kind stored by element type T.
func KindOf[T Element]() numeric.Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return numeric.Bool
	case uint8:
		return numeric.Uint8
	case uint16:
		return numeric.Uint16
	case uint32:
		return numeric.Uint32
	case uint64:
		return numeric.Uint64
	case int8:
		return numeric.Int8
	case int16:
		return numeric.Int16
	case int32:
		return numeric.Int32
	case int64:
		return numeric.Int64
	case Float16:
		return numeric.Float16
	case float32:
		return numeric.Float32
	case float64:
		return numeric.Float64
	default:
		return numeric.Invalid
	}
}

// New wraps data in an Array with the given shape. Without a shape the
// array is one-dimensional. The array takes ownership of data.
func New[T Element](data []T, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	n, err := conv.Elements(shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, got %d", ErrShapeMismatch, shape, n, len(data))
	}
	return &Array{kind: KindOf[T](), shape: slices.Clone(shape), data: data}, nil
}

// MustNew is like New but panics on error.
func MustNew[T Element](data []T, shape ...int) *Array {
	a, err := New(data, shape...)
	if err != nil {
		panic(err)
	}
	return a
}

// Like wraps data in an Array with the shape of a. It panics when the
// lengths differ.
func Like[T Element](a *Array, data []T) *Array {
	if len(data) != a.Len() {
		panic(fmt.Sprintf("sample: Like with %d elements for shape %v", len(data), a.shape))
	}
	return &Array{kind: KindOf[T](), shape: slices.Clone(a.shape), data: data}
}

// Zeros returns a zero-filled array of kind k. Without a shape the array
// holds a single element with shape [1].
func Zeros(k numeric.Kind, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{1}
	}
	n, err := conv.Elements(shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	var data any
	switch k {
	case numeric.Bool:
		data = make([]bool, n)
	case numeric.Uint8:
		data = make([]uint8, n)
	case numeric.Uint16:
		data = make([]uint16, n)
	case numeric.Uint32:
		data = make([]uint32, n)
	case numeric.Uint64:
		data = make([]uint64, n)
	case numeric.Int8:
		data = make([]int8, n)
	case numeric.Int16:
		data = make([]int16, n)
	case numeric.Int32:
		data = make([]int32, n)
	case numeric.Int64:
		data = make([]int64, n)
	case numeric.Float16:
		data = make([]Float16, n)
	case numeric.Float32:
		data = make([]float32, n)
	case numeric.Float64:
		data = make([]float64, n)
	default:
		return nil, fmt.Errorf("%w: %s", numeric.ErrUnsupportedType, k)
	}
	return &Array{kind: k, shape: slices.Clone(shape), data: data}, nil
}

// Data returns the backing slice of a when it holds elements of type T.
func Data[T Element](a *Array) ([]T, bool) {
	d, ok := a.data.([]T)
	return d, ok
}

// Kind returns the element kind.
func (a *Array) Kind() numeric.Kind { return a.kind }

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Len returns the number of elements. A zero Array has none.
func (a *Array) Len() int {
	if a.data == nil {
		return 0
	}
	return reflect.ValueOf(a.data).Len()
}

// Raw returns the backing slice as an untyped value ([]uint8, []Float16,
// ...). Callers type-switch on it.
func (a *Array) Raw() any { return a.data }

// SameStorage reports whether a and b share their backing slice.
func (a *Array) SameStorage(b *Array) bool {
	if a == nil || b == nil || a.kind != b.kind || a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return a == b
	}
	return reflect.ValueOf(a.data).Pointer() == reflect.ValueOf(b.data).Pointer()
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	c := &Array{kind: a.kind, shape: slices.Clone(a.shape)}
	switch d := a.data.(type) {
	case []bool:
		c.data = slices.Clone(d)
	case []uint8:
		c.data = slices.Clone(d)
	case []uint16:
		c.data = slices.Clone(d)
	case []uint32:
		c.data = slices.Clone(d)
	case []uint64:
		c.data = slices.Clone(d)
	case []int8:
		c.data = slices.Clone(d)
	case []int16:
		c.data = slices.Clone(d)
	case []int32:
		c.data = slices.Clone(d)
	case []int64:
		c.data = slices.Clone(d)
	case []Float16:
		c.data = slices.Clone(d)
	case []float32:
		c.data = slices.Clone(d)
	case []float64:
		c.data = slices.Clone(d)
	}
	return c
}

// Float64At returns element i as float64. Float16 samples are decoded;
// 64-bit integers beyond 2^53 are rounded.
func (a *Array) Float64At(i int) float64 {
	switch d := a.data.(type) {
	case []bool:
		if d[i] {
			return 1
		}
		return 0
	case []uint8:
		return float64(d[i])
	case []uint16:
		return float64(d[i])
	case []uint32:
		return float64(d[i])
	case []uint64:
		return float64(d[i])
	case []int8:
		return float64(d[i])
	case []int16:
		return float64(d[i])
	case []int32:
		return float64(d[i])
	case []int64:
		return float64(d[i])
	case []Float16:
		return f16.ToFloat64(d[i])
	case []float32:
		return float64(d[i])
	case []float64:
		return d[i]
	default:
		panic("sample: unknown storage")
	}
}

// Float64s returns every element as float64.
func (a *Array) Float64s() []float64 {
	out := make([]float64, a.Len())
	if h, ok := a.data.([]Float16); ok {
		f16.Decode(out, h)
		return out
	}
	for i := range out {
		out[i] = a.Float64At(i)
	}
	return out
}

// Equal reports whether a and b have the same kind, shape and elements.
func Equal(a, b *Array) bool {
	if a.kind != b.kind || !slices.Equal(a.shape, b.shape) {
		return false
	}
	return reflect.DeepEqual(a.data, b.data)
}

// String describes the array kind and shape, e.g. "uint8[2 3]".
func (a *Array) String() string {
	return fmt.Sprintf("%s%v", a.kind, a.shape)
}
