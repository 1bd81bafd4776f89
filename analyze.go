package tonegen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tonegen/go-tone-generator/internal/analysis"
)

// Analysis reports measured properties of a rendered buffer. Values are
// computed from the quantized bytes, not from the oscillator state, so they
// reflect what a device consuming the buffer would actually see.
type Analysis struct {
	// PeakFrequency is the dominant FFT bin frequency in Hz.
	PeakFrequency float64

	// DCOffset is the mean normalized sample value.
	DCOffset float64

	// PeakAmplitude is the largest absolute normalized sample value.
	PeakAmplitude float64

	// Frames is the number of frames analyzed.
	Frames int
}

// Analyze decodes the buffer back to normalized samples and measures its
// spectral peak, DC offset and peak amplitude. Only channel 0 is analyzed;
// the renderer duplicates the same signal across channels.
func Analyze(buf *Buffer) (Analysis, error) {
	mono, err := buf.MonoFloats()
	if err != nil {
		return Analysis{}, err
	}

	report := analysis.Spectrum(mono, float64(buf.SampleRate))
	return Analysis{
		PeakFrequency: report.PeakFrequency,
		DCOffset:      report.DCOffset,
		PeakAmplitude: report.PeakAmplitude,
		Frames:        report.Frames,
	}, nil
}

// WriteAnalysis writes the spectral analysis block appended to the info
// report in analyze mode.
func WriteAnalysis(w io.Writer, a Analysis) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Spectral Analysis:")
	fmt.Fprintf(bw, "  Peak freq:    %.2f Hz\n", a.PeakFrequency)
	fmt.Fprintf(bw, "  Peak ampl:    %.4f\n", a.PeakAmplitude)
	fmt.Fprintf(bw, "  DC offset:    %+.6f\n", a.DCOffset)

	return bw.Flush()
}
