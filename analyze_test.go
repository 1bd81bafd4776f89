package tonegen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonegen/go-tone-generator/internal/testutil"
)

func TestAnalyzeRenderedTone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 440
	cfg.DurationMS = 100

	buf, err := Render(cfg)
	require.NoError(t, err)

	analysis, err := Analyze(buf)
	require.NoError(t, err)

	assert.Equal(t, buf.Frames, analysis.Frames)
	testutil.AssertRelativeError(t, 440, analysis.PeakFrequency, testutil.FrequencyTolerance)
	assert.InDelta(t, 1.0, analysis.PeakAmplitude, 0.01)
	assert.InDelta(t, 0.0, analysis.DCOffset, 0.01)
}

func TestAnalyzeScaledTone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 1000
	cfg.SampleRate = 48000
	cfg.Channels = 1
	cfg.BitDepth = 24
	cfg.DurationMS = 50
	cfg.Amplitude = 0.25

	buf, err := Render(cfg)
	require.NoError(t, err)

	analysis, err := Analyze(buf)
	require.NoError(t, err)

	testutil.AssertRelativeError(t, 1000, analysis.PeakFrequency, testutil.FrequencyTolerance)
	assert.InDelta(t, 0.25, analysis.PeakAmplitude, 0.01)
}

func TestWriteAnalysis(t *testing.T) {
	var out bytes.Buffer
	err := WriteAnalysis(&out, Analysis{
		PeakFrequency: 440.12,
		PeakAmplitude: 0.9999,
		DCOffset:      -0.000012,
	})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Spectral Analysis:")
	assert.Contains(t, got, "Peak freq:    440.12 Hz")
	assert.Contains(t, got, "Peak ampl:    0.9999")
	assert.Contains(t, got, "DC offset:    -0.000012")
}
