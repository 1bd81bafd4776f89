package tonegen

import (
	"errors"
	"fmt"
	"math"
)

// Config holds waveform rendering configuration.
type Config struct {
	// Frequency is the sine frequency in Hz. Must be positive.
	Frequency float64

	// SampleRate is the sample rate in Hz. Must be positive.
	// See SupportedSampleRates for the documented rates.
	SampleRate int

	// Channels is the channel count: 1 (mono) or 2 (stereo).
	// The mono sine is duplicated across channels.
	Channels int

	// BitDepth is the quantization depth in bits: 16, 24 or 32.
	BitDepth int

	// DurationMS is the tone duration in milliseconds. Must be >= 0.
	// The frame count is round(SampleRate * DurationMS / 1000).
	DurationMS float64

	// Amplitude is the linear amplitude scale in [0, 1].
	// 1.0 renders at full scale for the configured bit depth.
	Amplitude float64

	// PacketAlign pads the buffer to a multiple of 64 bytes by
	// extending the tone, for USB packet-sized transfers.
	PacketAlign bool
}

// DefaultConfig returns the default rendering configuration:
// 440 Hz, 16 kHz, stereo, 16-bit, 1 ms, full scale.
func DefaultConfig() Config {
	return Config{
		Frequency:  440.0,
		SampleRate: 16000,
		Channels:   stereoChannels,
		BitDepth:   bitDepth16,
		DurationMS: 1.0,
		Amplitude:  maxAmplitude,
	}
}

// ErrInvalidConfig indicates invalid rendering configuration.
var ErrInvalidConfig = errors.New("invalid tone configuration")

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Frequency <= 0 || math.IsNaN(c.Frequency) || math.IsInf(c.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidConfig, c.Frequency)
	}

	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}

	if c.Channels != monoChannels && c.Channels != stereoChannels {
		return fmt.Errorf("%w: channel count must be 1 or 2, got %d", ErrInvalidConfig, c.Channels)
	}

	switch c.BitDepth {
	case bitDepth16, bitDepth24, bitDepth32:
	default:
		return fmt.Errorf("%w: bit depth must be 16, 24 or 32, got %d", ErrInvalidConfig, c.BitDepth)
	}

	if c.DurationMS < 0 || math.IsNaN(c.DurationMS) || math.IsInf(c.DurationMS, 0) {
		return fmt.Errorf("%w: duration must be non-negative, got %v", ErrInvalidConfig, c.DurationMS)
	}

	if c.Amplitude < minAmplitude || c.Amplitude > maxAmplitude || math.IsNaN(c.Amplitude) {
		return fmt.Errorf("%w: amplitude must be in [0, 1], got %v", ErrInvalidConfig, c.Amplitude)
	}

	return nil
}

// IsStandardRate reports whether the configured sample rate is one of the
// documented rates in SupportedSampleRates.
func (c *Config) IsStandardRate() bool {
	for _, rate := range SupportedSampleRates {
		if c.SampleRate == rate {
			return true
		}
	}
	return false
}

// BytesPerSample returns the byte width of one quantized sample.
func (c *Config) BytesPerSample() int {
	return c.BitDepth / bitsPerByte
}

// BytesPerFrame returns the byte width of one frame (one sample per channel).
func (c *Config) BytesPerFrame() int {
	return c.BytesPerSample() * c.Channels
}

// FrameCount returns the number of frames the configuration renders,
// including packet-alignment padding when enabled.
func (c *Config) FrameCount() int {
	frames := int(math.Round(c.DurationMS * float64(c.SampleRate) / msPerSecond))
	if !c.PacketAlign {
		return frames
	}
	return alignFrames(frames, c.BytesPerFrame())
}

// FullScale returns the maximum representable magnitude for the configured
// bit depth.
func (c *Config) FullScale() float64 {
	switch c.BitDepth {
	case bitDepth24:
		return maxInt24
	case bitDepth32:
		return maxInt32
	default:
		return maxInt16
	}
}

// alignFrames rounds frames up to the least count whose total byte size is a
// multiple of packetSize. frames*bytesPerFrame ≡ 0 (mod 64) holds exactly
// when frames is a multiple of 64/gcd(bytesPerFrame, 64).
func alignFrames(frames, bytesPerFrame int) int {
	step := packetSize / gcd(bytesPerFrame, packetSize)
	if rem := frames % step; rem != 0 {
		frames += step - rem
	}
	return frames
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
