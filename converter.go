package dtype

import (
	"time"

	"github.com/hupe1980/dtype/numeric"
	"github.com/hupe1980/dtype/sample"
)

// Converter converts sample arrays between kinds. It holds configuration
// only and is safe for concurrent use.
type Converter struct {
	opts options
}

// New creates a Converter whose defaults are set by opts.
func New(opts ...Option) *Converter {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Converter{opts: o}
}

var defaultConverter = New()

// Convert converts a to kind dst using the package defaults. See
// (*Converter).Convert.
func Convert(a *sample.Array, dst numeric.Kind, opts ...Option) (*Result, error) {
	return defaultConverter.Convert(a, dst, opts...)
}

// Convert returns a converted to kind dst.
//
// When a already has kind dst, a itself is returned unless WithForceCopy is
// set. Otherwise the result owns new storage and a is left untouched. The
// shape is always preserved and every result sample lies within the range
// of dst (see numeric.RangeOf).
//
// Errors are limited to unsupported kinds (ErrUnsupportedType) and float
// samples outside [-1, 1] when dst is not a float kind (ErrOutOfRange).
// Everything else is reported through Result.Diagnostics.
func (c *Converter) Convert(a *sample.Array, dst numeric.Kind, opts ...Option) (*Result, error) {
	return c.do(a, dst, c.resolve(opts))
}

func (c *Converter) resolve(opts []Option) options {
	o := c.opts
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (c *Converter) do(a *sample.Array, dst numeric.Kind, o options) (*Result, error) {
	if a == nil {
		return nil, ErrNilArray
	}

	start := time.Now()
	res, err := convert(a, dst, o)
	o.observe(a.Kind(), dst, a.Len(), res, err, time.Since(start))
	return res, err
}

func (o options) observe(src, dst numeric.Kind, elements int, res *Result, err error, d time.Duration) {
	var diags []Diagnostic
	if res != nil {
		diags = res.Diagnostics
	}
	if o.logger != nil {
		o.logger.LogConvert(src, dst, elements, diags, err)
	}
	if o.metricsCollector != nil {
		o.metricsCollector.RecordConvert(src, dst, elements, d, err)
		for _, dg := range diags {
			o.metricsCollector.RecordDiagnostic(dg.Kind)
		}
	}
}

// route is the conversion path chosen for a (source, destination) pair.
type route uint8

const (
	routeIdentity route = iota
	routeToBool
	routeFromBool
	routeFloatToFloat
	routeFloatToInt
	routeIntToFloat
	routeUnsignedToUnsigned
	routeUnsignedToSigned
	routeSignedToUnsigned
	routeSignedToSigned
)

type classPair struct {
	in, out numeric.Class
}

// classify picks the route for converting kind in to kind out. Both kinds
// must be supported.
func classify(in, out numeric.Kind) route {
	if in == out {
		return routeIdentity
	}
	p := classPair{in.Class(), out.Class()}
	switch {
	case p.out == numeric.Boolean:
		return routeToBool
	case p.in == numeric.Boolean:
		return routeFromBool
	}
	switch p {
	case classPair{numeric.Float, numeric.Float}:
		return routeFloatToFloat
	case classPair{numeric.Float, numeric.Unsigned}, classPair{numeric.Float, numeric.Signed}:
		return routeFloatToInt
	case classPair{numeric.Unsigned, numeric.Float}, classPair{numeric.Signed, numeric.Float}:
		return routeIntToFloat
	case classPair{numeric.Unsigned, numeric.Unsigned}:
		return routeUnsignedToUnsigned
	case classPair{numeric.Unsigned, numeric.Signed}:
		return routeUnsignedToSigned
	case classPair{numeric.Signed, numeric.Unsigned}:
		return routeSignedToUnsigned
	default:
		return routeSignedToSigned
	}
}

func convert(a *sample.Array, dst numeric.Kind, o options) (*Result, error) {
	src := a.Kind()
	if !numeric.IsSupported(src) || !numeric.IsSupported(dst) {
		return nil, &UnsupportedTypeError{Source: src, Destination: dst}
	}
	if src == dst {
		if o.forceCopy {
			return &Result{Array: a.Clone()}, nil
		}
		return &Result{Array: a}, nil
	}

	j := &job{
		in:      a,
		src:     src,
		dst:     dst,
		route:   classify(src, dst),
		opts:    o,
		workers: o.workers,
	}
	out, err := j.run()
	if err != nil {
		return nil, err
	}
	return &Result{Array: out, Diagnostics: j.diags}, nil
}
