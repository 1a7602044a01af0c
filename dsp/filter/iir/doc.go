// Package iir provides rational (pole-zero) filters described by numerator
// and denominator polynomials in z^-1.
//
// The all-pole form built by [NewAllPole] is the synthesis filter of linear
// prediction: H(z) = gain / A(z) with A(z) = 1 + a1·z^-1 + ... + aP·z^-P.
// [Filter.FrequencyResponse] samples H on the one-sided FFT grid and is the
// usual way to turn a set of LPC coefficients into a spectral envelope.
//
// Filters are immutable after construction. Unstable denominators are not
// rejected; their responses and outputs may contain Inf or NaN.
package iir
