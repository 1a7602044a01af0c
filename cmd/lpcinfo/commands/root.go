package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-feature/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Analysis overrides, applied on top of the config file when set.
	flagOrder       int
	flagWindowSize  float64
	flagHopSize     float64
	flagFFTSize     int
	flagDCTSize     int
	flagWindow      string
	flagPreEmphasis float64
	flagNormalize   bool
)

var rootCmd = &cobra.Command{
	Use:   "lpcinfo",
	Short: "Frame-based LPC and spectral envelope analysis",
	Long: `lpcinfo - inspect linear prediction analysis of audio.

Input is a PCM or float WAV file (left channel is used), "-" for stdin,
or a synthetic tone selected with --sine.

Analysis settings default to a 32 ms window, 10 ms hop, order 16 and a
512-point FFT. They can be loaded from a YAML file with --config and
overridden per flag.

Examples:
  lpcinfo features speech.wav
  lpcinfo --sine 1000 compare --frame 20
  lpcinfo synth tone.wav --sine 440 --duration 2`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVarP(&configPath, "config", "c", "", "analysis config file (YAML or JSON)")

	def := config.Default()
	pf.IntVar(&flagOrder, "order", def.Order, "LPC order")
	pf.Float64Var(&flagWindowSize, "window-size", def.WindowSize, "analysis window in seconds")
	pf.Float64Var(&flagHopSize, "hop-size", def.HopSize, "hop in seconds")
	pf.IntVar(&flagFFTSize, "fft-size", def.FFTSize, "FFT size (power of two)")
	pf.IntVar(&flagDCTSize, "dct-size", def.DCTSize, "number of DCT coefficients")
	pf.StringVar(&flagWindow, "window", def.Window, "analysis window type")
	pf.Float64Var(&flagPreEmphasis, "pre-emphasis", def.PreEmphasis, "pre-emphasis coefficient in [0, 1)")
	pf.BoolVar(&flagNormalize, "normalize", def.Normalize, "normalize the power spectrum by the FFT size")

	addInputFlags(pf)
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// analysisConfig resolves defaults, the config file and changed flags.
func analysisConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("order") {
		cfg.Order = flagOrder
	}
	if flags.Changed("window-size") {
		cfg.WindowSize = flagWindowSize
	}
	if flags.Changed("hop-size") {
		cfg.HopSize = flagHopSize
	}
	if flags.Changed("fft-size") {
		cfg.FFTSize = flagFFTSize
	}
	if flags.Changed("dct-size") {
		cfg.DCTSize = flagDCTSize
	}
	if flags.Changed("window") {
		cfg.Window = flagWindow
	}
	if flags.Changed("pre-emphasis") {
		cfg.PreEmphasis = flagPreEmphasis
	}
	if flags.Changed("normalize") {
		cfg.Normalize = flagNormalize
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("analysis config: %w", err)
	}

	slog.Debug("analysis config",
		"order", cfg.Order,
		"window_size", cfg.WindowSize,
		"hop_size", cfg.HopSize,
		"fft_size", cfg.FFTSize,
		"dct_size", cfg.DCTSize,
		"window", cfg.Window,
		"pre_emphasis", cfg.PreEmphasis)
	return cfg, nil
}
