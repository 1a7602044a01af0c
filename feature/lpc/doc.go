// Package lpc extracts linear prediction coefficients frame by frame and
// turns them back into spectral envelopes.
//
// Every vector produced by an [Extractor] of order P has P+1 features:
// the prediction error energy followed by a1..aP of
// A(z) = 1 + a1·z^-1 + ... + aP·z^-P.
//
// An [Extractor] owns FFT scratch buffers while computing and must not be
// shared between goroutines during a call.
package lpc
