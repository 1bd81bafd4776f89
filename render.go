package tonegen

import (
	"fmt"

	"github.com/tonegen/go-tone-generator/internal/pcm"
	"github.com/tonegen/go-tone-generator/internal/synth"
)

// Buffer is a rendered waveform: interleaved little-endian PCM bytes plus
// the parameters they were rendered with.
type Buffer struct {
	// Data holds the interleaved little-endian PCM bytes.
	Data []byte

	// Frames is the number of frames in Data, including any
	// packet-alignment padding.
	Frames int

	// Channels is the interleaved channel count.
	Channels int

	// BitDepth is the sample quantization depth in bits.
	BitDepth int

	// SampleRate is the sample rate in Hz.
	SampleRate int

	// Frequency is the rendered sine frequency in Hz.
	Frequency float64

	// DurationMS is the requested duration in milliseconds.
	DurationMS float64
}

// Render synthesizes the sine waveform described by cfg and returns the
// quantized, interleaved byte buffer.
func Render(cfg Config) (*Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	frames := cfg.FrameCount()

	mono := synth.Sine(cfg.Frequency, float64(cfg.SampleRate), frames)
	synth.ScaleInPlace(mono, cfg.Amplitude)
	interleaved := synth.Interleave(mono, cfg.Channels)
	quantized := synth.Quantize(interleaved, cfg.FullScale())

	data, err := pcm.Encode(quantized, cfg.BitDepth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Buffer{
		Data:       data,
		Frames:     frames,
		Channels:   cfg.Channels,
		BitDepth:   cfg.BitDepth,
		SampleRate: cfg.SampleRate,
		Frequency:  cfg.Frequency,
		DurationMS: cfg.DurationMS,
	}, nil
}

// TotalBytes returns the byte length of the rendered data.
func (b *Buffer) TotalBytes() int {
	return len(b.Data)
}

// BytesPerSample returns the byte width of one quantized sample.
func (b *Buffer) BytesPerSample() int {
	return b.BitDepth / bitsPerByte
}

// FullScale returns the maximum representable magnitude for the buffer's
// bit depth.
func (b *Buffer) FullScale() float64 {
	cfg := Config{BitDepth: b.BitDepth}
	return cfg.FullScale()
}

// Samples decodes the buffer back into interleaved quantized samples.
func (b *Buffer) Samples() ([]int32, error) {
	return pcm.Decode(b.Data, b.BitDepth)
}

// MonoFloats decodes channel 0 of the buffer into normalized float64
// samples in [-1, 1].
func (b *Buffer) MonoFloats() ([]float64, error) {
	samples, err := b.Samples()
	if err != nil {
		return nil, err
	}

	if b.Channels > 1 {
		deinterleaved := make([]int32, 0, len(samples)/b.Channels)
		for i := 0; i < len(samples); i += b.Channels {
			deinterleaved = append(deinterleaved, samples[i])
		}
		samples = deinterleaved
	}

	return pcm.ToFloats(samples, b.FullScale()), nil
}
