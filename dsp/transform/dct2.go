package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidSize is returned for non-positive transform dimensions.
var ErrInvalidSize = errors.New("transform: size must be > 0")

// DCT2 is a DCT-II of input length Length() producing Size() coefficients.
type DCT2 struct {
	length int
	size   int

	// basis[k][n] = cos((2n+1)·k·π / 2L)
	basis [][]float64
	// inverse[k][n] = cos((2k+1)·n·π / 2L), column 0 stays zero: the DC
	// term enters Inverse as a separate 0.5·input[0] addend.
	inverse [][]float64
}

// NewDCT2 precomputes the forward and inverse cosine tables.
// size may exceed length.
func NewDCT2(length, size int) (*DCT2, error) {
	if length <= 0 || size <= 0 {
		return nil, fmt.Errorf("%w: length=%d size=%d", ErrInvalidSize, length, size)
	}

	m := math.Pi / float64(2*length)

	basis := make([][]float64, size)
	inverse := make([][]float64, size)
	for k := range size {
		basis[k] = make([]float64, length)
		for n := range length {
			basis[k][n] = math.Cos(float64(2*n+1) * float64(k) * m)
		}

		inverse[k] = make([]float64, length)
		for n := 1; n < length; n++ {
			inverse[k][n] = math.Cos(float64(2*k+1) * float64(n) * m)
		}
	}

	return &DCT2{
		length:  length,
		size:    size,
		basis:   basis,
		inverse: inverse,
	}, nil
}

// Length returns the expected input length.
func (d *DCT2) Length() int { return d.length }

// Size returns the number of coefficients.
func (d *DCT2) Size() int { return d.size }

// Direct computes the unnormalized DCT-II:
//
//	output[k] = sum_n input[n] * cos((2n+1)·k·π / 2L)
//
// for k < len(output). It panics if input is longer than Length() or output
// longer than Size().
func (d *DCT2) Direct(input, output []float64) {
	d.check(input, output)
	for k := range output {
		output[k] = vecmath.DotProduct(input, d.basis[k])
	}
}

// DirectN computes the orthonormal DCT-II: the Direct sum scaled by
// sqrt(2/len(output)), with output[0] scaled by a further sqrt(1/2).
func (d *DCT2) DirectN(input, output []float64) {
	if len(output) == 0 {
		return
	}
	d.Direct(input, output)
	vecmath.ScaleBlockInPlace(output, math.Sqrt(2/float64(len(output))))
	output[0] *= math.Sqrt(0.5)
}

// Inverse reconstructs a signal from Direct coefficients:
//
//	output[k] = 2/Size() · (0.5·input[0] + sum_{n>=1} input[n] * cos((2k+1)·n·π / 2L))
//
// With Length() == Size() it is the exact inverse of Direct.
func (d *DCT2) Inverse(input, output []float64) {
	d.check(input, output)
	if len(input) == 0 {
		for k := range output {
			output[k] = 0
		}
		return
	}

	scale := 2 / float64(d.size)
	for k := range output {
		output[k] = (0.5*input[0] + vecmath.DotProduct(input, d.inverse[k])) * scale
	}
}

func (d *DCT2) check(input, output []float64) {
	if len(input) > d.length {
		panic(fmt.Sprintf("transform: dct input length %d exceeds %d", len(input), d.length))
	}
	if len(output) > d.size {
		panic(fmt.Sprintf("transform: dct output length %d exceeds %d", len(output), d.size))
	}
}
