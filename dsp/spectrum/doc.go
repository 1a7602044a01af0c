// Package spectrum provides the FFT engine and spectrum-domain utilities.
//
// [FFT] wraps a fixed-size power-of-two algo-fft plan and produces one-sided
// power and magnitude spectra (size/2+1 bins) from a real sample window.
// Windows shorter than the transform are zero-padded; longer ones are
// truncated to the transform size.
//
// The remaining helpers operate on complex bins produced by any backend and
// use algo-vecmath kernels where available.
package spectrum
