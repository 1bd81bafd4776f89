package tonegen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// arrayBytesPerLine is the wrap width of array literal bodies.
const arrayBytesPerLine = 16

// arrayName derives the identifier for an emitted array constant, e.g.
// SINE_16000HZ_1MS_16BIT_2CH.
func arrayName(buf *Buffer) string {
	name := fmt.Sprintf("sine_%dhz_%dms_%dbit_%dch",
		buf.SampleRate, int(buf.DurationMS), buf.BitDepth, buf.Channels)
	return strings.ToUpper(name)
}

// writeArrayComment writes the descriptive comment header shared by the C
// and Rust emitters.
func writeArrayComment(bw *bufio.Writer, buf *Buffer) {
	plural := ""
	if buf.Channels > 1 {
		plural = "s"
	}
	fmt.Fprintf(bw, "// Sine wave: %g Hz, %g ms, %d-bit, %d channel%s\n",
		buf.Frequency, buf.DurationMS, buf.BitDepth, buf.Channels, plural)
	fmt.Fprintf(bw, "// Sample rate: %d Hz\n", buf.SampleRate)
	fmt.Fprintf(bw, "// Total bytes: %d\n", len(buf.Data))
}

// writeArrayBody writes the byte listing shared by the C and Rust emitters:
// rows of 16 bytes indented four spaces, comma after every byte except the
// last.
func writeArrayBody(bw *bufio.Writer, data []byte) {
	for i := 0; i < len(data); i += arrayBytesPerLine {
		end := min(i+arrayBytesPerLine, len(data))
		fmt.Fprint(bw, "    ")
		for j, b := range data[i:end] {
			fmt.Fprintf(bw, "0x%02X", b)
			if i+j < len(data)-1 {
				fmt.Fprint(bw, ", ")
			}
		}
		fmt.Fprintln(bw)
	}
}

// WriteCArray writes the buffer as a C array declaration suitable for
// embedding in firmware sources.
func WriteCArray(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)

	writeArrayComment(bw, buf)
	fmt.Fprintf(bw, "const uint8_t %s[%d] = {\n", arrayName(buf), len(buf.Data))
	writeArrayBody(bw, buf.Data)
	fmt.Fprintln(bw, "};")

	return bw.Flush()
}

// WriteRustArray writes the buffer as a Rust array declaration.
func WriteRustArray(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)

	writeArrayComment(bw, buf)
	fmt.Fprintf(bw, "pub const %s: [u8; %d] = [\n", arrayName(buf), len(buf.Data))
	writeArrayBody(bw, buf.Data)
	fmt.Fprintln(bw, "];")

	return bw.Flush()
}
