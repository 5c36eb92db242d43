package quant

import "github.com/hupe1980/dtype/internal/f16"

// Cast converts between native float widths.
func Cast[D, S Float](dst []D, src []S) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = D(v)
	}
}

// ToHalf rounds native float samples to binary16.
func ToHalf[S Float](dst []f16.Bits, src []S) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = f16.FromFloat64(float64(v))
	}
}

// FromHalf widens binary16 samples to a native float width.
func FromHalf[D Float](dst []D, src []f16.Bits) {
	dst = dst[:len(src)]
	for i, h := range src {
		dst[i] = D(f16.ToFloat64(h))
	}
}
