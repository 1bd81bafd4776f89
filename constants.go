package tonegen

// Channel constants
const (
	monoChannels   = 1 // Mono channel count
	stereoChannels = 2 // Stereo channel count (maximum supported)
)

// Supported bit depths
const (
	bitDepth16 = 16
	bitDepth24 = 24
	bitDepth32 = 32
)

// Full-scale amplitudes per bit depth
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// Packet alignment constants
const (
	// packetSize is the USB full-speed isochronous packet payload size.
	// Packet-aligned buffers are padded to a multiple of this many bytes.
	packetSize = 64
)

// Conversion constants
const (
	msPerSecond = 1000.0
	bitsPerByte = 8
)

// Amplitude limits
const (
	minAmplitude = 0.0
	maxAmplitude = 1.0
)

// SupportedSampleRates lists the sample rates the tool is documented for.
// 16 kHz covers speech and telephony, 44.1 kHz is the CD standard, and
// 48 kHz is the professional audio/video production rate. Other positive
// rates render correctly but callers may want to warn about them.
var SupportedSampleRates = []int{16000, 44100, 48000}
