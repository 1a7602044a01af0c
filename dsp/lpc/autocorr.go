package lpc

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-feature/dsp/core"
	algofft "github.com/cwbudde/algo-fft"
)

// ErrInvalidLength is returned for a non-positive frame length, or a frame
// longer than the Autocorrelator accepts.
var ErrInvalidLength = errors.New("lpc: invalid frame length")

// Autocorrelator computes biased autocorrelations of fixed-length frames
// through a zero-padded FFT. It reuses its plan and buffers and is not safe
// for concurrent use.
type Autocorrelator struct {
	length int
	plan   *algofft.Plan[complex128]
	time   []complex128
	freq   []complex128
}

// NewAutocorrelator prepares an FFT large enough for linear (non-circular)
// correlation of frames up to length samples.
func NewAutocorrelator(length int) (*Autocorrelator, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	size := core.NextPowerOfTwo(2*length - 1)
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("lpc: fft plan: %w", err)
	}

	return &Autocorrelator{
		length: length,
		plan:   plan,
		time:   make([]complex128, size),
		freq:   make([]complex128, size),
	}, nil
}

// Length returns the longest frame accepted by Compute.
func (c *Autocorrelator) Length() int { return c.length }

// Compute writes r[k] = sum_n frame[n]·frame[n+k] for k < len(dst).
// Lags at or beyond len(frame) are zero.
func (c *Autocorrelator) Compute(dst, frame []float64) error {
	if len(frame) > c.length {
		return fmt.Errorf("%w: frame of %d samples exceeds %d", ErrInvalidLength, len(frame), c.length)
	}

	for i := range c.time {
		c.time[i] = 0
	}
	for i, v := range frame {
		c.time[i] = complex(v, 0)
	}

	if err := c.plan.Forward(c.freq, c.time); err != nil {
		return fmt.Errorf("lpc: forward fft: %w", err)
	}

	// |X|^2 is the transform of the autocorrelation.
	for i, x := range c.freq {
		re, im := real(x), imag(x)
		c.freq[i] = complex(re*re+im*im, 0)
	}

	if err := c.plan.Inverse(c.time, c.freq); err != nil {
		return fmt.Errorf("lpc: inverse fft: %w", err)
	}

	for k := range dst {
		if k < len(frame) {
			dst[k] = real(c.time[k])
		} else {
			dst[k] = 0
		}
	}
	return nil
}

// Autocorrelation returns the biased autocorrelation of frame for lags
// 0..maxLag.
func Autocorrelation(frame []float64, maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, fmt.Errorf("lpc: negative lag %d", maxLag)
	}

	out := make([]float64, maxLag+1)
	if len(frame) == 0 {
		return out, nil
	}

	c, err := NewAutocorrelator(len(frame))
	if err != nil {
		return nil, err
	}
	if err := c.Compute(out, frame); err != nil {
		return nil, err
	}
	return out, nil
}
