package lpc

import "github.com/cwbudde/algo-feature/dsp/window"

const (
	// DefaultWindowSize is the analysis frame length in seconds.
	DefaultWindowSize = 0.032
	// DefaultHopSize is the frame advance in seconds.
	DefaultHopSize = 0.010
)

// Option configures an Extractor.
type Option func(*config)

type config struct {
	windowSize  float64
	hopSize     float64
	preEmphasis float64
	window      window.Type
}

func defaultConfig() config {
	return config{
		windowSize: DefaultWindowSize,
		hopSize:    DefaultHopSize,
		window:     window.TypeRectangular,
	}
}

// WithWindowSize sets the frame length in seconds.
func WithWindowSize(seconds float64) Option {
	return func(c *config) { c.windowSize = seconds }
}

// WithHopSize sets the distance between frame starts in seconds.
func WithHopSize(seconds float64) Option {
	return func(c *config) { c.hopSize = seconds }
}

// WithPreEmphasis applies y[n] = x[n] - alpha·x[n-1] before windowing.
// Zero disables it.
func WithPreEmphasis(alpha float64) Option {
	return func(c *config) { c.preEmphasis = alpha }
}

// WithWindow selects the analysis window.
func WithWindow(t window.Type) Option {
	return func(c *config) { c.window = t }
}
