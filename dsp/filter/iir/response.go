package iir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-feature/dsp/core"
	"github.com/cwbudde/algo-feature/dsp/spectrum"
)

// Response holds H(e^jw) sampled at fftSize/2+1 bins spanning [0, π].
type Response struct {
	bins []complex128
}

// Len returns the number of bins.
func (r Response) Len() int { return len(r.bins) }

// Bins returns a copy of the complex response.
func (r Response) Bins() []complex128 {
	return append([]complex128(nil), r.bins...)
}

// Magnitude returns |H| per bin.
func (r Response) Magnitude() []float64 { return spectrum.Magnitude(r.bins) }

// Power returns |H|^2 per bin.
func (r Response) Power() []float64 { return spectrum.Power(r.bins) }

// Phase returns the wrapped phase of H per bin in radians.
func (r Response) Phase() []float64 { return spectrum.Phase(r.bins) }

// FrequencyResponse evaluates H on the one-sided grid of an fftSize-point
// transform as the bin-wise ratio of the zero-padded numerator and
// denominator spectra.
//
// fftSize must be a power of two no shorter than either polynomial.
func (f *Filter) FrequencyResponse(fftSize int) (Response, error) {
	if !core.IsPowerOfTwo(fftSize) {
		return Response{}, fmt.Errorf("%w: %d", spectrum.ErrInvalidSize, fftSize)
	}
	if fftSize < len(f.b) || fftSize < len(f.a) {
		return Response{}, fmt.Errorf("%w: %d shorter than filter (%d/%d coefficients)",
			spectrum.ErrInvalidSize, fftSize, len(f.b), len(f.a))
	}

	fft, err := spectrum.NewFFT(fftSize)
	if err != nil {
		return Response{}, err
	}

	num, err := fft.Spectrum(f.b)
	if err != nil {
		return Response{}, err
	}
	den, err := fft.Spectrum(f.a)
	if err != nil {
		return Response{}, err
	}

	bins := make([]complex128, fft.Bins())
	for k := range bins {
		bins[k] = num[k] / den[k]
	}
	return Response{bins: bins}, nil
}

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return poly(f.b, w) / poly(f.a, w)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

func poly(c []float64, w float64) complex128 {
	var h complex128
	for k, v := range c {
		h += complex(v, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}
