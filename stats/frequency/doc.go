// Package frequency computes shape descriptors of one-sided magnitude
// spectra (bins 0..N/2 of an N-point transform).
//
// Bin i lies at i·sampleRate / (2·(len-1)) Hz. Inputs are linear
// magnitudes; use [FromPower] for power spectra.
package frequency
