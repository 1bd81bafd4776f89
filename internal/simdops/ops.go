// Package simdops wraps the SIMD-accelerated vector operations the renderer
// uses in its hot loops. Dispatch to AVX2/SSE happens inside
// github.com/tphakala/simd; on platforms without SIMD support the library
// falls back to pure Go.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
// dst and a must have equal length.
func Scale(dst, a []float64, s float64) {
	f64.Scale(dst, a, s)
}

// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
// dst must hold len(a)+len(b) elements; a and b must have equal length.
// Duplicating a mono signal to interleaved stereo is Interleave2(dst, s, s).
func Interleave2(dst, a, b []float64) {
	f64.Interleave2(dst, a, b)
}

// Sum returns the sum of all elements.
func Sum(a []float64) float64 {
	return f64.Sum(a)
}
