package tonegen

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// OutputFormat enumerates the supported buffer serializations.
type OutputFormat int

const (
	// FormatHex is a bracketed, comma-separated hexadecimal byte listing.
	FormatHex OutputFormat = iota

	// FormatCArray is a C array declaration (const uint8_t NAME[] = {...};).
	FormatCArray

	// FormatRustArray is a Rust array declaration (pub const NAME: [u8; N]).
	FormatRustArray

	// FormatRaw is the unmodified byte payload.
	FormatRaw

	// FormatWAV is a RIFF/WAVE container with a canonical 44-byte header.
	FormatWAV

	// FormatInfo is the buffer information report only, no data.
	FormatInfo
)

// ErrUnknownFormat indicates an unrecognized output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses an output format name. Case-insensitive; accepts the
// short aliases "c", "rust" and "bytes".
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "hex":
		return FormatHex, nil
	case "carray", "c":
		return FormatCArray, nil
	case "rustarray", "rust":
		return FormatRustArray, nil
	case "raw", "bytes":
		return FormatRaw, nil
	case "wav", "wave":
		return FormatWAV, nil
	case "info":
		return FormatInfo, nil
	default:
		return FormatHex, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// String returns the canonical format name.
func (f OutputFormat) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatCArray:
		return "carray"
	case FormatRustArray:
		return "rustarray"
	case FormatRaw:
		return "raw"
	case FormatWAV:
		return "wav"
	case FormatInfo:
		return "info"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// Binary reports whether the format emits binary data rather than text.
// Binary formats skip the human-readable info preamble.
func (f OutputFormat) Binary() bool {
	return f == FormatRaw || f == FormatWAV
}

// Write serializes the buffer's data section in this format.
func (f OutputFormat) Write(w io.Writer, buf *Buffer) error {
	switch f {
	case FormatHex:
		return WriteHex(w, buf)
	case FormatCArray:
		return WriteCArray(w, buf)
	case FormatRustArray:
		return WriteRustArray(w, buf)
	case FormatRaw:
		return WriteRaw(w, buf)
	case FormatWAV:
		return WriteWAV(w, buf)
	case FormatInfo:
		return WriteInfo(w, buf)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}

// WriteRaw writes the buffer bytes unmodified.
func WriteRaw(w io.Writer, buf *Buffer) error {
	_, err := w.Write(buf.Data)
	return err
}
