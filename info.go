package tonegen

import (
	"bufio"
	"fmt"
	"io"
)

// WriteInfo writes the configuration and buffer analysis report the text
// formats print before their data:
//
//	Sine Wave Generator - Configuration
//	=====================================
//	Frequency:      440 Hz
//	...
func WriteInfo(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)

	channelDesc := "stereo"
	if buf.Channels == monoChannels {
		channelDesc = "mono"
	}

	fmt.Fprintln(bw, "Sine Wave Generator - Configuration")
	fmt.Fprintln(bw, "=====================================")
	fmt.Fprintf(bw, "Frequency:      %g Hz\n", buf.Frequency)
	fmt.Fprintf(bw, "Sample Rate:    %d Hz\n", buf.SampleRate)
	fmt.Fprintf(bw, "Channels:       %d (%s)\n", buf.Channels, channelDesc)
	fmt.Fprintf(bw, "Bit Depth:      %d-bit\n", buf.BitDepth)
	fmt.Fprintf(bw, "Duration:       %g ms\n", buf.DurationMS)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Buffer Analysis:")
	fmt.Fprintf(bw, "  Frames:       %d\n", buf.Frames)
	fmt.Fprintf(bw, "  Total bytes:  %d\n", len(buf.Data))

	periodSamples := float64(buf.SampleRate) / buf.Frequency
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Frequency Analysis:")
	fmt.Fprintf(bw, "  Period:       %.2f samples\n", periodSamples)
	fmt.Fprintf(bw, "  Full cycles:  %.2f\n", float64(buf.Frames)/periodSamples)

	return bw.Flush()
}
