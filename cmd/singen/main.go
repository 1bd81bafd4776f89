// Command singen generates quantized sine wave buffers for embedded and
// hardware-test workflows.
//
// Usage:
//
//	singen -f 1000 -r 48000 -b 16 -d 10 -o carray
//	singen --frequency 440 --rate 44100 --channels 1 --bits 24
//	singen -r 16000 -d 1 -o rustarray -p
//	singen -o wav -w tone.wav
//
// Text formats (hex, carray, rustarray) print a configuration report before
// the data; raw and wav emit only the payload, so they are safe to pipe.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tonegen/go-tone-generator"
)

func main() {
	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("singen", pflag.ContinueOnError)
	flags.Usage = func() { printUsage(flags) }

	flags.Float64P("frequency", "f", 440.0, "Sine wave frequency in Hz")
	flags.IntP("rate", "r", 16000, "Sample rate in Hz (16000, 44100, 48000)")
	flags.IntP("channels", "c", 2, "Number of channels (1=mono, 2=stereo)")
	flags.IntP("bits", "b", 16, "Bit depth: 16, 24 or 32")
	flags.Float64P("duration", "d", 1.0, "Duration in milliseconds")
	flags.Float64("amplitude", 1.0, "Linear amplitude scale (0.0 to 1.0)")
	flags.StringP("output", "o", "hex", "Output format: hex, carray, rustarray, raw, wav, info")
	flags.BoolP("packet", "p", false, "Pad buffer to a multiple of 64 bytes (USB packet mode)")
	flags.BoolP("analyze", "a", false, "Analyze only: info report plus FFT spectrum, no data")
	flags.StringP("write", "w", "", "Write output to a file instead of stdout")
	flags.String("config", "", "Load defaults from a YAML profile")
	flags.BoolP("verbose", "v", false, "Verbose diagnostics on stderr")
	flags.BoolP("help", "h", false, "Show this help message")

	return flags
}

func run() error {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	if help, _ := flags.GetBool("help"); help {
		printUsage(flags)
		return nil
	}

	opts, err := loadOptions(flags)
	if err != nil {
		return err
	}

	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return generate(opts, os.Stdout)
}

func printUsage(flags *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: singen [OPTIONS]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprint(os.Stderr, flags.FlagUsages())
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  singen -f 1000 -r 48000 -b 16 -d 10 -o carray")
	fmt.Fprintln(os.Stderr, "  singen --frequency 440 --rate 44100 --channels 1 --bits 24")
	fmt.Fprintln(os.Stderr, "  singen -r 16000 -d 1 -o rustarray -p")
	fmt.Fprintln(os.Stderr, "  singen -o wav -w tone.wav")
}

// loadOptions merges flag values with an optional viper profile. Precedence
// is explicit flags > profile file > environment (SINGEN_*) > defaults.
func loadOptions(flags *pflag.FlagSet) (*options, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	v.SetEnvPrefix("SINGEN")
	v.AutomaticEnv()

	if configPath, _ := flags.GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read profile: %w", err)
		}
		logrus.Debugf("loaded profile %s", v.ConfigFileUsed())
	}

	format, err := tonegen.ParseFormat(v.GetString("output"))
	if err != nil {
		return nil, err
	}

	opts := &options{
		Config: tonegen.Config{
			Frequency:   v.GetFloat64("frequency"),
			SampleRate:  v.GetInt("rate"),
			Channels:    v.GetInt("channels"),
			BitDepth:    v.GetInt("bits"),
			DurationMS:  v.GetFloat64("duration"),
			Amplitude:   v.GetFloat64("amplitude"),
			PacketAlign: v.GetBool("packet"),
		},
		Format:      format,
		AnalyzeOnly: v.GetBool("analyze"),
		WritePath:   v.GetString("write"),
		Verbose:     v.GetBool("verbose"),
	}

	if opts.AnalyzeOnly {
		opts.Format = tonegen.FormatInfo
	}

	return opts, nil
}
