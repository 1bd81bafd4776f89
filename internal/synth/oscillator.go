// Package synth implements sine oscillation, channel interleaving and
// integer quantization for the waveform renderer.
package synth

import (
	"math"

	"github.com/tonegen/go-tone-generator/internal/simdops"
)

const twoPi = 2 * math.Pi

// Sine renders frames samples of a unit-amplitude sine at the given
// frequency and sample rate. A phase accumulator advances by 2π·f/rate per
// frame and wraps modulo 2π after every step, which keeps phase error
// bounded over arbitrarily long buffers. The first sample is always 0.
func Sine(frequency, sampleRate float64, frames int) []float64 {
	samples := make([]float64, frames)
	phaseInc := frequency / sampleRate * twoPi

	var phase float64
	for i := range samples {
		samples[i] = math.Sin(phase)
		phase = math.Mod(phase+phaseInc, twoPi)
	}

	return samples
}

// ScaleInPlace multiplies every sample by amplitude.
func ScaleInPlace(samples []float64, amplitude float64) {
	if amplitude == 1.0 {
		return
	}
	simdops.Scale(samples, samples, amplitude)
}

// Interleave duplicates a mono signal across the given channel count,
// interleaving one sample per channel per frame. Mono input with channels=1
// is returned as-is.
func Interleave(mono []float64, channels int) []float64 {
	if channels <= 1 {
		return mono
	}

	dst := make([]float64, len(mono)*channels)
	if channels == 2 {
		simdops.Interleave2(dst, mono, mono)
		return dst
	}

	for i, s := range mono {
		base := i * channels
		for ch := range channels {
			dst[base+ch] = s
		}
	}
	return dst
}

// Quantize converts normalized samples in [-1, 1] to integers at the given
// full scale. Out-of-range inputs are clamped; conversion truncates toward
// zero, matching the usual embedded DAC test-vector convention.
func Quantize(samples []float64, fullScale float64) []int32 {
	out := make([]int32, len(samples))
	for i, s := range samples {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		out[i] = int32(s * fullScale)
	}
	return out
}
