// Package config holds the analysis settings of the lpcinfo command.
//
// Settings are read from a YAML (or JSON) file; fields missing from the
// file keep their defaults:
//
//	window_size: 0.032
//	hop_size: 0.010
//	order: 16
//	fft_size: 512
//	dct_size: 16
//	window: rectangular
//	pre_emphasis: 0
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/algo-feature/dsp/core"
	"github.com/cwbudde/algo-feature/dsp/window"
	"github.com/cwbudde/algo-feature/feature/lpc"
	"github.com/cwbudde/algo-feature/measure/envelope"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full analysis configuration.
type Config struct {
	WindowSize  float64 `yaml:"window_size" json:"window_size"`
	HopSize     float64 `yaml:"hop_size" json:"hop_size"`
	Order       int     `yaml:"order" json:"order"`
	FFTSize     int     `yaml:"fft_size" json:"fft_size"`
	DCTSize     int     `yaml:"dct_size" json:"dct_size"`
	Window      string  `yaml:"window" json:"window"`
	PreEmphasis float64 `yaml:"pre_emphasis" json:"pre_emphasis"`
	Normalize   bool    `yaml:"normalize,omitempty" json:"normalize,omitempty"`
}

// Default returns the settings of the reference LPC analysis.
func Default() Config {
	return Config{
		WindowSize: lpc.DefaultWindowSize,
		HopSize:    lpc.DefaultHopSize,
		Order:      16,
		FFTSize:    512,
		DCTSize:    16,
		Window:     window.TypeRectangular.String(),
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case !(c.WindowSize > 0):
		return fmt.Errorf("%w: window_size %g must be > 0", ErrInvalid, c.WindowSize)
	case !(c.HopSize > 0):
		return fmt.Errorf("%w: hop_size %g must be > 0", ErrInvalid, c.HopSize)
	case c.Order < 1:
		return fmt.Errorf("%w: order %d must be >= 1", ErrInvalid, c.Order)
	case !core.IsPowerOfTwo(c.FFTSize):
		return fmt.Errorf("%w: fft_size %d must be a power of two", ErrInvalid, c.FFTSize)
	case c.FFTSize < c.Order+1:
		return fmt.Errorf("%w: fft_size %d shorter than order+1", ErrInvalid, c.FFTSize)
	case c.DCTSize < 1:
		return fmt.Errorf("%w: dct_size %d must be >= 1", ErrInvalid, c.DCTSize)
	case !(c.PreEmphasis >= 0 && c.PreEmphasis < 1):
		return fmt.Errorf("%w: pre_emphasis %g outside [0, 1)", ErrInvalid, c.PreEmphasis)
	}
	if _, err := window.ParseType(c.Window); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// WindowType resolves the window name. Unknown names give rectangular.
func (c Config) WindowType() window.Type {
	t, err := window.ParseType(c.Window)
	if err != nil {
		return window.TypeRectangular
	}
	return t
}

// ExtractorOptions maps c onto LPC extractor options.
func (c Config) ExtractorOptions() []lpc.Option {
	return []lpc.Option{
		lpc.WithWindowSize(c.WindowSize),
		lpc.WithHopSize(c.HopSize),
		lpc.WithPreEmphasis(c.PreEmphasis),
		lpc.WithWindow(c.WindowType()),
	}
}

// Envelope returns the spectral comparison settings.
func (c Config) Envelope() envelope.Config {
	return envelope.Config{
		HopSize:   c.HopSize,
		FFTSize:   c.FFTSize,
		Normalize: c.Normalize,
	}
}
