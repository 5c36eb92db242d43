package dtype

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/dtype/numeric"
	"github.com/hupe1980/dtype/sample"
)

// DiagnosticKind classifies a non-fatal conversion event.
type DiagnosticKind uint8

const (
	// SignLoss means negative samples were clipped to zero (or to false).
	SignLoss DiagnosticKind = iota + 1
	// PrecisionLoss means distinct source values may map to the same
	// destination value.
	PrecisionLoss
	// DowncastWithoutScaling means samples were narrowed without
	// rescaling because every value already fit the destination.
	DowncastWithoutScaling
)

// String returns the kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case SignLoss:
		return "sign-loss"
	case PrecisionLoss:
		return "precision-loss"
	case DowncastWithoutScaling:
		return "downcast-without-scaling"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
	}
}

// Diagnostic is an advisory event raised while converting. It never
// prevents the conversion from completing.
type Diagnostic struct {
	Kind        DiagnosticKind
	Source      numeric.Kind
	Destination numeric.Kind

	// Positions holds the flat indices of the samples that lost their sign.
	// It is only set for SignLoss, and is nil when the array is too large
	// to index with 32 bits.
	Positions *roaring.Bitmap
}

// String returns a human readable description.
func (d Diagnostic) String() string {
	switch d.Kind {
	case SignLoss:
		if d.Positions != nil {
			return fmt.Sprintf("sign loss converting %s to %s (%d samples clipped)", d.Source, d.Destination, d.Positions.GetCardinality())
		}
		return fmt.Sprintf("possible sign loss converting %s to %s", d.Source, d.Destination)
	case PrecisionLoss:
		return fmt.Sprintf("possible precision loss converting %s to %s", d.Source, d.Destination)
	case DowncastWithoutScaling:
		return fmt.Sprintf("downcasting %s to %s without scaling: every value fits", d.Source, d.Destination)
	default:
		return fmt.Sprintf("%s converting %s to %s", d.Kind, d.Source, d.Destination)
	}
}

// Result is the outcome of a successful conversion.
type Result struct {
	// Array holds the converted samples. It is the input array itself when
	// no conversion was needed and no copy was requested.
	Array *sample.Array

	// Diagnostics lists advisory events in the order they were raised.
	Diagnostics []Diagnostic
}

// Has reports whether a diagnostic of kind k was raised.
func (r *Result) Has(k DiagnosticKind) bool {
	for _, d := range r.Diagnostics {
		if d.Kind == k {
			return true
		}
	}
	return false
}

// Kinds returns the diagnostic kinds in order.
func (r *Result) Kinds() []DiagnosticKind {
	out := make([]DiagnosticKind, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = d.Kind
	}
	return out
}
