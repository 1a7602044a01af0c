// Package lpc implements the numerical core of linear prediction:
// biased autocorrelation and the Levinson-Durbin recursion.
//
// Coefficients follow the convention A(z) = 1 + a1·z^-1 + ... + aP·z^-P,
// so a prediction of x[n] is -sum_{i>=1} a[i]·x[n-i].
//
// Silent (all-zero) frames are not rejected. Their zero energy makes the
// recursion divide by zero and the NaN results are returned unchanged.
package lpc
