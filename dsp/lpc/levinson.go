package lpc

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder is returned when the order is below 1 or the
// autocorrelation is too short for it.
var ErrInvalidOrder = errors.New("lpc: invalid order")

// LevinsonDurbin solves the Toeplitz normal equations for the prediction
// polynomial of the given order from autocorrelation r.
//
// The returned slice has order+1 elements with a[0] == 1. predErr is the
// final prediction error energy.
func LevinsonDurbin(r []float64, order int) (a []float64, predErr float64, err error) {
	a, _, predErr, err = levinsonDurbin(r, order, false)
	return a, predErr, err
}

// LevinsonDurbinReflection is LevinsonDurbin that also returns the
// reflection (PARCOR) coefficient of every stage, k[0] being stage 1.
func LevinsonDurbinReflection(r []float64, order int) (a, k []float64, predErr float64, err error) {
	return levinsonDurbin(r, order, true)
}

func levinsonDurbin(r []float64, order int, wantReflection bool) ([]float64, []float64, float64, error) {
	if order < 1 || len(r) < order+1 {
		return nil, nil, 0, fmt.Errorf("%w: order=%d with %d lags", ErrInvalidOrder, order, len(r))
	}

	a := make([]float64, order+1)
	a[0] = 1

	var k []float64
	if wantReflection {
		k = make([]float64, order)
	}

	e := r[0]
	for i := 1; i <= order; i++ {
		acc := 0.0
		for j := 0; j < i; j++ {
			acc += a[j] * r[i-j]
		}
		lambda := -acc / e

		// Symmetric in-place update of a[0..i].
		for n := 0; n <= i/2; n++ {
			tmp := a[i-n] + lambda*a[n]
			a[n] += lambda * a[i-n]
			a[i-n] = tmp
		}

		if wantReflection {
			k[i-1] = lambda
		}
		e *= 1 - lambda*lambda
	}

	return a, k, e, nil
}
