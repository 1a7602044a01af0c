package spectrum

import (
	"math"
	"testing"
)

func TestCountLocalMaxima(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want int
	}{
		{name: "empty", in: nil, want: 0},
		{name: "monotonic", in: []float64{1, 2, 3, 4}, want: 0},
		{name: "single peak", in: []float64{0, 1, 0}, want: 1},
		{name: "two peaks", in: []float64{0, 2, 1, 3, 0}, want: 2},
		{name: "plateau counts once", in: []float64{0, 1, 1, 1, 0}, want: 1},
		{name: "falling start", in: []float64{5, 4, 6, 1}, want: 1},
		{name: "neg inf flat", in: []float64{math.Inf(-1), math.Inf(-1), 0, -1}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountLocalMaxima(tt.in); got != tt.want {
				t.Fatalf("CountLocalMaxima(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPeakIndex(t *testing.T) {
	if got := PeakIndex([]float64{1, math.NaN(), 5, 3}); got != 2 {
		t.Fatalf("PeakIndex = %d, want 2", got)
	}
	if got := PeakIndex([]float64{math.NaN()}); got != -1 {
		t.Fatalf("PeakIndex(NaN) = %d, want -1", got)
	}
	if got := PeakIndex(nil); got != -1 {
		t.Fatalf("PeakIndex(nil) = %d, want -1", got)
	}
}
