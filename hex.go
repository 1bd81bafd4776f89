package tonegen

import (
	"bufio"
	"fmt"
	"io"
)

// hexBytesPerLine is the fixed wrap width of the hex listing.
const hexBytesPerLine = 16

// WriteHex writes the buffer as a bracketed hexadecimal listing, wrapped at
// 16 bytes per line:
//
//	[0x00, 0x00, 0x10, 0x38, ...
//	 0x00, 0x00, ...]
func WriteHex(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "[")
	for i := 0; i < len(buf.Data); i += hexBytesPerLine {
		if i > 0 {
			fmt.Fprint(bw, "\n ")
		}
		end := min(i+hexBytesPerLine, len(buf.Data))
		for j, b := range buf.Data[i:end] {
			if j > 0 {
				fmt.Fprint(bw, ", ")
			}
			fmt.Fprintf(bw, "0x%02X", b)
		}
	}
	fmt.Fprintln(bw, "]")

	return bw.Flush()
}
