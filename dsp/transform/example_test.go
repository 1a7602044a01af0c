package transform_test

import (
	"fmt"

	"github.com/cwbudde/algo-feature/dsp/transform"
)

func ExampleDCT2() {
	d, err := transform.NewDCT2(4, 4)
	if err != nil {
		panic(err)
	}

	x := []float64{1, 2, 3, 4}
	coeffs := make([]float64, 4)
	back := make([]float64, 4)

	d.Direct(x, coeffs)
	d.Inverse(coeffs, back)

	fmt.Printf("dc=%.1f\n", coeffs[0])
	fmt.Printf("%.3f %.3f %.3f %.3f\n", back[0], back[1], back[2], back[3])
	// Output:
	// dc=10.0
	// 1.000 2.000 3.000 4.000
}
