package tonegen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonegen/go-tone-generator/internal/testutil"
)

func TestRenderReferenceTone(t *testing.T) {
	// 440 Hz, 16 kHz, stereo, 16-bit, 1 ms: 16 frames, 64 bytes, and the
	// first frame is exactly zero since phase starts at 0.
	buf, err := Render(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 16, buf.Frames)
	assert.Equal(t, 64, buf.TotalBytes())

	samples, err := buf.Samples()
	require.NoError(t, err)
	require.Len(t, samples, 32)
	assert.Zero(t, samples[0])
	assert.Zero(t, samples[1])
}

func TestRenderInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BitDepth = 12

	_, err := Render(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRenderByteLengthFormula(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		bitDepth int
		rate     int
		duration float64
	}{
		{name: "mono 16-bit", channels: 1, bitDepth: 16, rate: 16000, duration: 2},
		{name: "stereo 24-bit", channels: 2, bitDepth: 24, rate: 44100, duration: 1.5},
		{name: "mono 32-bit", channels: 1, bitDepth: 32, rate: 48000, duration: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Channels = tt.channels
			cfg.BitDepth = tt.bitDepth
			cfg.SampleRate = tt.rate
			cfg.DurationMS = tt.duration

			buf, err := Render(cfg)
			require.NoError(t, err)

			assert.Equal(t, cfg.FrameCount(), buf.Frames)
			assert.Equal(t, buf.Frames*cfg.BytesPerFrame(), buf.TotalBytes())
		})
	}
}

func TestRenderFullScaleRange(t *testing.T) {
	for _, bitDepth := range []int{16, 24, 32} {
		cfg := DefaultConfig()
		cfg.BitDepth = bitDepth
		cfg.DurationMS = 20 // several full cycles

		buf, err := Render(cfg)
		require.NoError(t, err)

		samples, err := buf.Samples()
		require.NoError(t, err)

		limit := int32(cfg.FullScale())
		testutil.AssertSamplesInRange(t, samples, -limit, limit,
			"bit depth %d", bitDepth)
	}
}

func TestRenderPacketAlignment(t *testing.T) {
	for _, channels := range []int{1, 2} {
		for _, bitDepth := range []int{16, 24, 32} {
			cfg := DefaultConfig()
			cfg.Channels = channels
			cfg.BitDepth = bitDepth
			cfg.DurationMS = 0.9 // deliberately awkward frame count
			cfg.PacketAlign = true

			buf, err := Render(cfg)
			require.NoError(t, err)

			testutil.AssertPacketAligned(t, buf.Data, 64,
				"%d channels, %d-bit", channels, bitDepth)
		}
	}
}

func TestRenderChannelDuplication(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMS = 5

	buf, err := Render(cfg)
	require.NoError(t, err)

	samples, err := buf.Samples()
	require.NoError(t, err)
	for i := 0; i < len(samples); i += 2 {
		require.Equal(t, samples[i], samples[i+1], "frame %d differs between channels", i/2)
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = 997 // non-integer period
	cfg.DurationMS = 7

	first, err := Render(cfg)
	require.NoError(t, err)
	second, err := Render(cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestRenderAmplitudeScaling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channels = 1
	cfg.DurationMS = 20
	cfg.Amplitude = 0.5

	buf, err := Render(cfg)
	require.NoError(t, err)

	mono, err := buf.MonoFloats()
	require.NoError(t, err)

	peak := 0.0
	for _, s := range mono {
		if s > peak {
			peak = s
		}
	}
	assert.InDelta(t, 0.5, peak, 0.01)
}

func TestRenderQuantizationError(t *testing.T) {
	// Decoding the buffer back must reproduce the ideal sine to within
	// two quantization steps (one for rounding, one for truncation).
	cfg := DefaultConfig()
	cfg.Channels = 1
	cfg.DurationMS = 5

	buf, err := Render(cfg)
	require.NoError(t, err)

	mono, err := buf.MonoFloats()
	require.NoError(t, err)

	want := make([]float64, buf.Frames)
	for i := range want {
		want[i] = math.Sin(2 * math.Pi * cfg.Frequency * float64(i) / float64(cfg.SampleRate))
	}
	testutil.AssertMaxDeviation(t, want, mono, 2*testutil.QuantizationTolerance)
}

func TestRenderZeroDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMS = 0

	buf, err := Render(cfg)
	require.NoError(t, err)
	assert.Zero(t, buf.Frames)
	assert.Empty(t, buf.Data)
}

func TestBufferMonoFloats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMS = 2

	buf, err := Render(cfg)
	require.NoError(t, err)

	mono, err := buf.MonoFloats()
	require.NoError(t, err)
	assert.Len(t, mono, buf.Frames)
	assert.Zero(t, mono[0])
}
