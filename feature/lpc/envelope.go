package lpc

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-feature/dsp/filter/iir"
	"github.com/cwbudde/algo-feature/feature"
)

// ErrDegenerateVector is returned for vectors that cannot describe an
// all-pole envelope.
var ErrDegenerateVector = errors.New("lpc: degenerate feature vector")

// Envelope derives the synthesis filter parameters of v: gain is the square
// root of the prediction error and a is a fresh copy of the features with
// a[0] replaced by 1. v is not modified.
func Envelope(v feature.Vector) (gain float64, a []float64, err error) {
	if len(v.Features) == 0 {
		return 0, nil, fmt.Errorf("%w: no features", ErrDegenerateVector)
	}

	allZero := true
	for _, f := range v.Features {
		if f != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return 0, nil, fmt.Errorf("%w: all features are zero", ErrDegenerateVector)
	}

	e := v.Features[0]
	if math.IsNaN(e) || e < 0 {
		return 0, nil, fmt.Errorf("%w: prediction error %g", ErrDegenerateVector, e)
	}

	a = append([]float64(nil), v.Features...)
	a[0] = 1
	return math.Sqrt(e), a, nil
}

// EnvelopeFilter returns the all-pole filter sqrt(error) / A(z) for v.
func EnvelopeFilter(v feature.Vector) (*iir.Filter, error) {
	gain, a, err := Envelope(v)
	if err != nil {
		return nil, err
	}
	return iir.NewAllPole(gain, a)
}
