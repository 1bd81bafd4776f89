package tonegen

import (
	"encoding/binary"
	"io"

	"github.com/go-audio/audio"
)

// WAV container constants
const (
	wavHeaderSize      = 44 // Total header size in bytes
	wavRiffHeaderSize  = 36 // RIFF chunk size = wavRiffHeaderSize + dataSize
	wavPCMSubchunkSize = 16 // fmt subchunk size for PCM
	wavPCMFormatTag    = 1  // AudioFormat tag for linear PCM
)

// WriteWAV writes the buffer as a RIFF/WAVE container. The buffer length is
// known before serialization, so the header is emitted complete and the
// writer never needs to seek; pipes and sockets work as destinations.
func WriteWAV(w io.Writer, buf *Buffer) error {
	byteRate := buf.SampleRate * buf.Channels * buf.BytesPerSample()
	blockAlign := buf.Channels * buf.BytesPerSample()
	dataSize := uint32(len(buf.Data))

	header := make([]byte, wavHeaderSize)

	// RIFF header
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], wavRiffHeaderSize+dataSize)
	copy(header[8:12], "WAVE")

	// fmt subchunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], wavPCMSubchunkSize)
	binary.LittleEndian.PutUint16(header[20:22], wavPCMFormatTag)
	binary.LittleEndian.PutUint16(header[22:24], uint16(buf.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(buf.BitDepth))

	// data subchunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(buf.Data)
	return err
}

// IntBuffer converts the rendered buffer to a go-audio IntBuffer for
// interoperation with go-audio encoders and processors.
func (b *Buffer) IntBuffer() (*audio.IntBuffer, error) {
	samples, err := b.Samples()
	if err != nil {
		return nil, err
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return &audio.IntBuffer{
		Data: data,
		Format: &audio.Format{
			NumChannels: b.Channels,
			SampleRate:  b.SampleRate,
		},
		SourceBitDepth: b.BitDepth,
	}, nil
}
