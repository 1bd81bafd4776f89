package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/tonegen/go-tone-generator"
)

// options holds the fully resolved CLI configuration.
type options struct {
	tonegen.Config
	Format      tonegen.OutputFormat
	AnalyzeOnly bool
	WritePath   string
	Verbose     bool
}

// generate renders the configured tone and serializes it to the requested
// destination. stdout is only used when no output file is configured.
func generate(opts *options, stdout io.Writer) error {
	if opts.SampleRate > 0 && !opts.Config.IsStandardRate() {
		logrus.Warnf("%d Hz is not in the standard supported rates list", opts.SampleRate)
	}

	buf, err := tonegen.Render(opts.Config)
	if err != nil {
		return err
	}

	logrus.Debugf("rendered %d frames, %d bytes (%d-bit, %d channels)",
		buf.Frames, buf.TotalBytes(), buf.BitDepth, buf.Channels)

	if opts.WritePath != "" {
		return writeFile(opts, buf)
	}

	return emit(stdout, opts, buf)
}

// emit writes the serialized buffer to w. Text formats are preceded by the
// info report, matching the tool's traditional output layout.
func emit(w io.Writer, opts *options, buf *tonegen.Buffer) error {
	if opts.Format.Binary() {
		return opts.Format.Write(w, buf)
	}

	if err := tonegen.WriteInfo(w, buf); err != nil {
		return err
	}

	if opts.AnalyzeOnly {
		analysis, err := tonegen.Analyze(buf)
		if err != nil {
			return err
		}
		return tonegen.WriteAnalysis(w, analysis)
	}

	if opts.Format == tonegen.FormatInfo {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", dataHeading(opts.Format)); err != nil {
		return err
	}
	return opts.Format.Write(w, buf)
}

// dataHeading returns the heading printed between the info report and the
// data section.
func dataHeading(format tonegen.OutputFormat) string {
	switch format {
	case tonegen.FormatCArray:
		return "C array declaration:"
	case tonegen.FormatRustArray:
		return "Rust array declaration:"
	default:
		return "Buffer data (hexadecimal):"
	}
}

// writeFile serializes the buffer to the configured output file. The WAV
// format goes through the go-audio encoder, which needs a seekable
// destination; other formats are written as-is.
func writeFile(opts *options, buf *tonegen.Buffer) (err error) {
	f, err := os.Create(opts.WritePath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if opts.Format == tonegen.FormatWAV {
		return encodeWAVFile(f, buf)
	}

	return emit(f, opts, buf)
}

// encodeWAVFile writes the buffer through the go-audio WAV encoder.
func encodeWAVFile(f *os.File, buf *tonegen.Buffer) error {
	intBuf, err := buf.IntBuffer()
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, buf.SampleRate, buf.BitDepth, buf.Channels, wavPCMFormat)
	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// wavPCMFormat is the RIFF audio format tag for linear PCM.
const wavPCMFormat = 1
