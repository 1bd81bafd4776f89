// Package tonegen synthesizes quantized sine waveforms for embedded and
// hardware-test workflows.
//
// The package renders a sine tone into an interleaved little-endian PCM byte
// buffer at 16, 24 or 32-bit depth, then serializes that buffer to one of
// several encodings: a hexadecimal listing, a C or Rust array literal, raw
// bytes, or a RIFF/WAVE container. Typical uses are generating test vectors
// for DAC/codec bring-up, stimulus buffers for USB audio endpoints, and
// reference tones baked into firmware images.
//
// # Quick Start
//
// One-shot rendering with defaults (440 Hz, 16 kHz, stereo, 16-bit, 1 ms):
//
//	buf, err := tonegen.Render(tonegen.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = tonegen.WriteHex(os.Stdout, buf)
//
// Custom configuration:
//
//	cfg := tonegen.Config{
//	    Frequency:  1000,
//	    SampleRate: 48000,
//	    Channels:   1,
//	    BitDepth:   24,
//	    DurationMS: 10,
//	    Amplitude:  1.0,
//	}
//	buf, err := tonegen.Render(cfg)
//
// # Rendering Model
//
// Synthesis uses a phase accumulator: the phase advances by 2π·f/rate per
// frame and is wrapped modulo 2π after every step, so long buffers do not
// accumulate floating-point drift. The mono sine value is scaled to the full
// scale of the configured bit depth (±32767, ±8388607 or ±2147483647),
// truncated toward zero, duplicated across channels, and encoded
// little-endian. The first frame always carries phase 0 and therefore
// amplitude 0.
//
// With [Config.PacketAlign] set, the frame count is rounded up to the least
// count that makes the total byte count a multiple of 64, so the buffer
// packs exactly into 64-byte USB full-speed isochronous packets. The padding
// frames continue the sine rather than repeating silence.
//
// # Formatters
//
// All formatters are stateless single-pass encoders over the same [Buffer]:
//
//   - [WriteHex]: bracketed, comma-separated hex listing, 16 bytes per line
//   - [WriteCArray], [WriteRustArray]: array literal with a descriptive header
//   - [WriteRaw]: the raw byte payload
//   - [WriteWAV]: canonical 44-byte RIFF/WAVE header followed by the data
//
// Buffer sizes are known before serialization starts, so [WriteWAV] emits a
// complete header up front and works on non-seekable streams such as pipes.
//
// # Analysis
//
// [Analyze] decodes a rendered buffer back to normalized floats and reports
// the FFT peak frequency, DC offset and peak amplitude, which is useful for
// sanity-checking a buffer before it is burned into firmware.
package tonegen
