// Package analysis inspects rendered waveforms: FFT peak detection, DC
// offset and peak amplitude. It operates on normalized mono samples decoded
// back from a rendered buffer, so it verifies what the buffer actually
// contains rather than what the oscillator intended.
package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tonegen/go-tone-generator/internal/simdops"
)

// minSpectrumSamples is the shortest input worth transforming. Below this
// the FFT bins are too coarse to report a meaningful peak.
const minSpectrumSamples = 2

// Report summarizes a waveform analysis.
type Report struct {
	// PeakFrequency is the frequency in Hz of the dominant spectral bin
	// (DC excluded).
	PeakFrequency float64

	// DCOffset is the mean sample value. A pure sine over whole periods
	// is close to zero.
	DCOffset float64

	// PeakAmplitude is the largest absolute sample value, normalized to
	// full scale.
	PeakAmplitude float64

	// Frames is the number of samples analyzed.
	Frames int
}

// Spectrum analyzes normalized mono samples captured at the given sample
// rate. Input is zero-padded to a power of two before the real FFT; the
// frequency resolution is therefore sampleRate/fftSize.
func Spectrum(samples []float64, sampleRate float64) Report {
	report := Report{Frames: len(samples)}
	if len(samples) == 0 {
		return report
	}

	report.DCOffset = simdops.Sum(samples) / float64(len(samples))
	for _, s := range samples {
		if a := math.Abs(s); a > report.PeakAmplitude {
			report.PeakAmplitude = a
		}
	}

	if len(samples) < minSpectrumSamples {
		return report
	}

	fftSize := nextPowerOfTwo(len(samples))
	padded := make([]float64, fftSize)
	copy(padded, samples)

	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, padded)

	// Find the dominant bin, skipping DC.
	peakBin := 1
	peakMag := 0.0
	for i := 1; i < len(coeffs); i++ {
		if mag := cmplx.Abs(coeffs[i]); mag > peakMag {
			peakMag = mag
			peakBin = i
		}
	}
	report.PeakFrequency = fft.Freq(peakBin) * sampleRate

	return report
}

// nextPowerOfTwo returns the least power of two >= n.
func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
