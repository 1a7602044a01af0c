package iir

import (
	"errors"
	"fmt"
)

// ErrInvalidCoefficients is returned when a filter cannot be normalised.
var ErrInvalidCoefficients = errors.New("iir: invalid coefficients")

// Filter is a direct-form rational filter
//
//	H(z) = (b0 + b1·z^-1 + ... + bM·z^-M) / (1 + a1·z^-1 + ... + aN·z^-N)
//
// Coefficients are stored normalised so that a[0] == 1.
type Filter struct {
	b []float64
	a []float64
}

// New creates a filter from numerator b and denominator a.
// Both slices are copied and divided by a[0].
func New(b, a []float64) (*Filter, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty numerator", ErrInvalidCoefficients)
	}
	if len(a) == 0 || a[0] == 0 {
		return nil, fmt.Errorf("%w: denominator must start with a non-zero term", ErrInvalidCoefficients)
	}

	a0 := a[0]
	nb := make([]float64, len(b))
	for i, v := range b {
		nb[i] = v / a0
	}
	na := make([]float64, len(a))
	for i, v := range a {
		na[i] = v / a0
	}
	na[0] = 1

	return &Filter{b: nb, a: na}, nil
}

// NewAllPole creates the all-pole filter gain / A(z).
func NewAllPole(gain float64, a []float64) (*Filter, error) {
	return New([]float64{gain}, a)
}

// Order returns the larger of the numerator and denominator orders.
func (f *Filter) Order() int {
	return max(len(f.b), len(f.a)) - 1
}

// Numerator returns a copy of the normalised numerator coefficients.
func (f *Filter) Numerator() []float64 {
	return append([]float64(nil), f.b...)
}

// Denominator returns a copy of the normalised denominator coefficients.
// The first element is always 1.
func (f *Filter) Denominator() []float64 {
	return append([]float64(nil), f.a...)
}

// Process filters src from a zero initial state and returns a new slice.
//
//	y[n] = sum_k b[k]·x[n-k] - sum_{k>=1} a[k]·y[n-k]
//
// No state is kept between calls.
func (f *Filter) Process(src []float64) []float64 {
	out := make([]float64, len(src))
	for n := range src {
		var y float64
		for k, bk := range f.b {
			if k > n {
				break
			}
			y += bk * src[n-k]
		}
		for k := 1; k < len(f.a) && k <= n; k++ {
			y -= f.a[k] * out[n-k]
		}
		out[n] = y
	}
	return out
}

// ImpulseResponse returns the first n samples of the impulse response.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	x := make([]float64, n)
	x[0] = 1
	return f.Process(x)
}
