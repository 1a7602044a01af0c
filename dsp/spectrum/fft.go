package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-feature/dsp/core"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidSize is returned when an FFT size is not a positive power of two.
var ErrInvalidSize = errors.New("spectrum: fft size must be a positive power of two")

// FFT is a fixed-size forward transform for real sample windows.
//
// An FFT reuses its plan across calls and is not safe for concurrent use;
// create one per goroutine.
type FFT struct {
	size int
	plan *algofft.Plan[complex128]
}

// NewFFT creates an FFT engine of the given size.
func NewFFT(size int) (*FFT, error) {
	if !core.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	return &FFT{size: size, plan: plan}, nil
}

// Size returns the transform length.
func (f *FFT) Size() int { return f.size }

// Bins returns the number of one-sided bins, Size()/2 + 1.
func (f *FFT) Bins() int { return f.size/2 + 1 }

// Spectrum returns all Size() complex bins of samples.
// The input is zero-padded or truncated to Size().
func (f *FFT) Spectrum(samples []float64) ([]complex128, error) {
	in := make([]complex128, f.size)
	n := min(len(samples), f.size)
	for i := 0; i < n; i++ {
		in[i] = complex(samples[i], 0)
	}

	out := make([]complex128, f.size)
	if err := f.plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}
	return out, nil
}

// PowerSpectrum returns |X[k]|^2 for the one-sided bins of samples.
// When normalize is set every bin is divided by Size().
func (f *FFT) PowerSpectrum(samples []float64, normalize bool) ([]float64, error) {
	bins, err := f.Spectrum(samples)
	if err != nil {
		return nil, err
	}

	out := Power(bins[:f.Bins()])
	if normalize {
		vecmath.ScaleBlockInPlace(out, 1/float64(f.size))
	}
	return out, nil
}

// MagnitudeSpectrum returns |X[k]| for the one-sided bins of samples.
// When normalize is set every bin is divided by Size().
func (f *FFT) MagnitudeSpectrum(samples []float64, normalize bool) ([]float64, error) {
	bins, err := f.Spectrum(samples)
	if err != nil {
		return nil, err
	}

	out := Magnitude(bins[:f.Bins()])
	if normalize {
		vecmath.ScaleBlockInPlace(out, 1/float64(f.size))
	}
	return out, nil
}

// BinFrequencies returns the centre frequency in Hz of each one-sided bin
// of a size-point transform at sampleRate.
func BinFrequencies(size int, sampleRate float64) []float64 {
	if size <= 0 {
		return nil
	}
	out := make([]float64, size/2+1)
	step := sampleRate / float64(size)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
