package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRelativeError(t *testing.T) {
	e, err := RelativeError([]float64{3, 4}, []float64{3, 4})
	if err != nil || e != 0 {
		t.Fatalf("RelativeError(identical) = %v, %v", e, err)
	}

	e, err = RelativeError([]float64{3, 4.5}, []float64{3, 4})
	if err != nil {
		t.Fatalf("RelativeError error: %v", err)
	}
	if math.Abs(e-0.1) > 1e-12 {
		t.Fatalf("RelativeError = %v, want 0.1", e)
	}

	e, _ = RelativeError([]float64{0, 2}, []float64{0, 0})
	if e != 2 {
		t.Fatalf("RelativeError against zeros = %v, want 2", e)
	}

	if _, err := RelativeError([]float64{1}, nil); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
	RequireFinite(t, []float64{0, -1, 1e300})
}
