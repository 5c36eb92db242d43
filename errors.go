package dtype

import (
	"errors"
	"fmt"

	"github.com/hupe1980/dtype/numeric"
)

var (
	// ErrUnsupportedType is returned when either side of a conversion is
	// outside the supported set of kinds.
	ErrUnsupportedType = numeric.ErrUnsupportedType

	// ErrOutOfRange is returned when a float sample lies outside [-1, 1]
	// and the destination is not a float kind.
	ErrOutOfRange = errors.New("float samples must lie in [-1, 1]")

	// ErrNilArray is returned when no array is given.
	ErrNilArray = errors.New("nil sample array")
)

// UnsupportedTypeError reports a conversion between kinds outside the
// supported set.
//
// errors.Is(err, ErrUnsupportedType) holds for this error.
type UnsupportedTypeError struct {
	Source      numeric.Kind
	Destination numeric.Kind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("can not convert %s to %s", e.Source, e.Destination)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// OutOfRangeError reports the first float sample outside [-1, 1].
//
// errors.Is(err, ErrOutOfRange) holds for this error.
type OutOfRangeError struct {
	Source      numeric.Kind
	Destination numeric.Kind
	Index       int
	Value       float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("can not convert %s to %s: sample %d is %g, outside [-1, 1]", e.Source, e.Destination, e.Index, e.Value)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
