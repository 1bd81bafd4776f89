package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq, rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}
	return out
}

func TestSpectrumFindsSinePeak(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		rate float64
		n    int
	}{
		{name: "440Hz at 16kHz", freq: 440, rate: 16000, n: 1600},
		{name: "1kHz at 48kHz", freq: 1000, rate: 48000, n: 4800},
		{name: "near Nyquist", freq: 7000, rate: 16000, n: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Spectrum(sine(tt.freq, tt.rate, tt.n), tt.rate)

			// Bin resolution after zero-padding bounds the error.
			fftSize := nextPowerOfTwo(tt.n)
			binWidth := tt.rate / float64(fftSize)
			assert.InDelta(t, tt.freq, report.PeakFrequency, 2*binWidth)
			assert.Equal(t, tt.n, report.Frames)
		})
	}
}

func TestSpectrumDCOffset(t *testing.T) {
	samples := make([]float64, 1024)
	for i := range samples {
		samples[i] = 0.25
	}

	report := Spectrum(samples, 16000)
	assert.InDelta(t, 0.25, report.DCOffset, 1e-12)
	assert.InDelta(t, 0.25, report.PeakAmplitude, 1e-12)
}

func TestSpectrumPureSineHasNoDC(t *testing.T) {
	// Whole number of periods: the mean cancels almost exactly.
	report := Spectrum(sine(1000, 16000, 1600), 16000)
	assert.InDelta(t, 0, report.DCOffset, 1e-6)
	assert.InDelta(t, 1.0, report.PeakAmplitude, 1e-3)
}

func TestSpectrumEmptyAndTiny(t *testing.T) {
	report := Spectrum(nil, 16000)
	assert.Zero(t, report.Frames)
	assert.Zero(t, report.PeakFrequency)

	report = Spectrum([]float64{0.5}, 16000)
	assert.Equal(t, 1, report.Frames)
	assert.InDelta(t, 0.5, report.PeakAmplitude, 0)
	assert.Zero(t, report.PeakFrequency)
}

func TestNextPowerOfTwo(t *testing.T) {
	require.Equal(t, 1, nextPowerOfTwo(1))
	require.Equal(t, 2, nextPowerOfTwo(2))
	require.Equal(t, 4, nextPowerOfTwo(3))
	require.Equal(t, 2048, nextPowerOfTwo(1600))
}
