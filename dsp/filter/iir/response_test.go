package iir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-feature/dsp/spectrum"
)

func TestFrequencyResponseMatchesDirectEvaluation(t *testing.T) {
	const (
		fftSize    = 64
		sampleRate = 16000.0
	)

	f, err := NewAllPole(0.7, []float64{1, -1.2, 0.6, -0.1})
	if err != nil {
		t.Fatalf("NewAllPole() error = %v", err)
	}

	resp, err := f.FrequencyResponse(fftSize)
	if err != nil {
		t.Fatalf("FrequencyResponse() error = %v", err)
	}
	if resp.Len() != fftSize/2+1 {
		t.Fatalf("Len() = %d, want %d", resp.Len(), fftSize/2+1)
	}

	bins := resp.Bins()
	freqs := spectrum.BinFrequencies(fftSize, sampleRate)
	for k, h := range bins {
		want := f.Response(freqs[k], sampleRate)
		if cmplx.Abs(h-want) > 1e-9*math.Max(1, cmplx.Abs(want)) {
			t.Fatalf("bin %d: got %v, want %v", k, h, want)
		}
	}
}

func TestAllPoleDCPower(t *testing.T) {
	const gain = 0.5
	a := []float64{1, -0.5, 0.25}

	f, _ := NewAllPole(gain, a)
	resp, err := f.FrequencyResponse(16)
	if err != nil {
		t.Fatalf("FrequencyResponse() error = %v", err)
	}

	sum := a[0] + a[1] + a[2]
	want := gain * gain / (sum * sum)
	if got := resp.Power()[0]; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Power()[0] = %v, want %v", got, want)
	}
	if got := resp.Magnitude()[0]; math.Abs(got-math.Sqrt(want)) > 1e-12 {
		t.Fatalf("Magnitude()[0] = %v, want %v", got, math.Sqrt(want))
	}
	if got := resp.Phase()[0]; math.Abs(got) > 1e-12 {
		t.Fatalf("Phase()[0] = %v, want 0", got)
	}
}

func TestFrequencyResponseRejectsBadSizes(t *testing.T) {
	f, _ := NewAllPole(1, []float64{1, 0.1, 0.2, 0.3, 0.4})

	for _, size := range []int{0, 6, 4} {
		if _, err := f.FrequencyResponse(size); !errors.Is(err, spectrum.ErrInvalidSize) {
			t.Fatalf("FrequencyResponse(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
	if _, err := f.FrequencyResponse(8); err != nil {
		t.Fatalf("FrequencyResponse(8) error = %v", err)
	}
}

func TestMagnitudeDB(t *testing.T) {
	f, _ := New([]float64{1, 1}, []float64{1})

	if got, want := f.MagnitudeDB(0, 48000), 20*math.Log10(2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("MagnitudeDB(DC) = %v, want %v", got, want)
	}
	if got := f.MagnitudeDB(24000, 48000); !math.IsInf(got, -1) && got > -200 {
		t.Fatalf("MagnitudeDB(Nyquist) = %v, want a deep null", got)
	}
}
