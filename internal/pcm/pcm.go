// Package pcm encodes and decodes little-endian integer PCM sample data at
// 16, 24 and 32-bit depths.
package pcm

import (
	"encoding/binary"
	"fmt"
)

// Byte sizes for PCM sample formats
const (
	bytesPerSample16 = 2 // 16-bit PCM
	bytesPerSample24 = 3 // 24-bit PCM
	bytesPerSample32 = 4 // 32-bit PCM
)

// Bit shift amounts for 24-bit sample packing
const (
	bitShift8  = 8
	bitShift16 = 16
)

// BytesPerSample returns the byte width for a bit depth, or an error for
// unsupported depths.
func BytesPerSample(bitDepth int) (int, error) {
	switch bitDepth {
	case 16:
		return bytesPerSample16, nil
	case 24:
		return bytesPerSample24, nil
	case 32:
		return bytesPerSample32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

// Encode packs quantized samples into little-endian bytes at the given bit
// depth. 24-bit samples occupy three bytes with the sign carried in the top
// byte.
func Encode(samples []int32, bitDepth int) ([]byte, error) {
	width, err := BytesPerSample(bitDepth)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, len(samples)*width)
	switch bitDepth {
	case 16:
		for i, s := range samples {
			binary.LittleEndian.PutUint16(buf[i*bytesPerSample16:], uint16(int16(s)))
		}
	case 24:
		for i, s := range samples {
			buf[i*bytesPerSample24] = byte(s)
			buf[i*bytesPerSample24+1] = byte(s >> bitShift8)
			buf[i*bytesPerSample24+2] = byte(s >> bitShift16)
		}
	case 32:
		for i, s := range samples {
			binary.LittleEndian.PutUint32(buf[i*bytesPerSample32:], uint32(s))
		}
	}

	return buf, nil
}

// Decode unpacks little-endian bytes back into quantized samples. The data
// length must be a multiple of the sample width. 24-bit samples are
// sign-extended into the full int32 range.
func Decode(data []byte, bitDepth int) ([]int32, error) {
	width, err := BytesPerSample(bitDepth)
	if err != nil {
		return nil, err
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("pcm data length %d is not a multiple of sample width %d", len(data), width)
	}

	samples := make([]int32, len(data)/width)
	switch bitDepth {
	case 16:
		for i := range samples {
			samples[i] = int32(int16(binary.LittleEndian.Uint16(data[i*bytesPerSample16:])))
		}
	case 24:
		for i := range samples {
			v := uint32(data[i*bytesPerSample24]) |
				uint32(data[i*bytesPerSample24+1])<<bitShift8 |
				uint32(data[i*bytesPerSample24+2])<<bitShift16
			// Sign-extend from bit 23.
			samples[i] = int32(v<<bitShift8) >> bitShift8
		}
	case 32:
		for i := range samples {
			samples[i] = int32(binary.LittleEndian.Uint32(data[i*bytesPerSample32:]))
		}
	}

	return samples, nil
}

// ToFloats converts quantized samples to normalized float64 values by
// dividing by fullScale.
func ToFloats(samples []int32, fullScale float64) []float64 {
	out := make([]float64, len(samples))
	inv := 1.0 / fullScale
	for i, s := range samples {
		out[i] = float64(s) * inv
	}
	return out
}
