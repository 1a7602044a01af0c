package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-feature/internal/testutil"
	"github.com/mjibson/go-dsp/fft"
)

func TestNewFFTRejectsInvalidSize(t *testing.T) {
	for _, size := range []int{0, -8, 3, 100, 511} {
		if _, err := NewFFT(size); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewFFT(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestFFTSizeAndBins(t *testing.T) {
	f, err := NewFFT(512)
	if err != nil {
		t.Fatalf("NewFFT() error = %v", err)
	}
	if f.Size() != 512 || f.Bins() != 257 {
		t.Fatalf("Size=%d Bins=%d, want 512 257", f.Size(), f.Bins())
	}
}

func TestSpectrumMatchesReferenceFFT(t *testing.T) {
	const size = 256

	x := testutil.DeterministicNoise(7, 1, size)
	f, err := NewFFT(size)
	if err != nil {
		t.Fatalf("NewFFT() error = %v", err)
	}

	got, err := f.Spectrum(x)
	if err != nil {
		t.Fatalf("Spectrum() error = %v", err)
	}
	want := fft.FFTReal(x)

	for k := range want {
		if cmplx.Abs(got[k]-want[k]) > 1e-9 {
			t.Fatalf("bin %d: got %v want %v", k, got[k], want[k])
		}
	}
}

func TestPowerSpectrumSineBin(t *testing.T) {
	const (
		size = 512
		bin  = 32
		amp  = 0.5
	)

	x := testutil.DeterministicSine(float64(bin), size, amp, size)
	f, _ := NewFFT(size)

	p, err := f.PowerSpectrum(x, false)
	if err != nil {
		t.Fatalf("PowerSpectrum() error = %v", err)
	}
	if len(p) != f.Bins() {
		t.Fatalf("len = %d, want %d", len(p), f.Bins())
	}

	want := math.Pow(amp*size/2, 2)
	if math.Abs(p[bin]-want)/want > 1e-9 {
		t.Fatalf("p[%d] = %v, want %v", bin, p[bin], want)
	}
	if PeakIndex(p) != bin {
		t.Fatalf("peak at %d, want %d", PeakIndex(p), bin)
	}

	pn, err := f.PowerSpectrum(x, true)
	if err != nil {
		t.Fatalf("PowerSpectrum(normalize) error = %v", err)
	}
	for i := range p {
		if math.Abs(pn[i]*size-p[i]) > 1e-6*math.Max(1, p[i]) {
			t.Fatalf("normalized bin %d: %v * %d != %v", i, pn[i], size, p[i])
		}
	}
}

func TestMagnitudeSpectrumIsSqrtPower(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 64)
	f, _ := NewFFT(64)

	p, _ := f.PowerSpectrum(x, false)
	m, err := f.MagnitudeSpectrum(x, false)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum() error = %v", err)
	}
	for i := range p {
		if math.Abs(m[i]*m[i]-p[i]) > 1e-9*math.Max(1, p[i]) {
			t.Fatalf("bin %d: |X|^2=%v power=%v", i, m[i]*m[i], p[i])
		}
	}

	mn, _ := f.MagnitudeSpectrum(x, true)
	if math.Abs(mn[1]*64-m[1]) > 1e-9 {
		t.Fatalf("normalized magnitude mismatch: %v vs %v", mn[1]*64, m[1])
	}
}

func TestSpectrumZeroPadsAndTruncates(t *testing.T) {
	f, _ := NewFFT(8)

	short, err := f.Spectrum([]float64{1})
	if err != nil {
		t.Fatalf("Spectrum() error = %v", err)
	}
	for k, v := range short {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("impulse bin %d = %v, want 1", k, v)
		}
	}

	long := make([]float64, 16)
	long[0] = 1
	long[12] = 100 // beyond the transform, must be ignored
	trunc, _ := f.Spectrum(long)
	for k, v := range trunc {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("truncated bin %d = %v, want 1", k, v)
		}
	}
}

func TestParseval(t *testing.T) {
	const size = 128
	x := testutil.DeterministicNoise(11, 1, size)
	f, _ := NewFFT(size)
	bins, _ := f.Spectrum(x)

	energy := 0.0
	for _, v := range x {
		energy += v * v
	}
	freqEnergy := 0.0
	for _, p := range Power(bins) {
		freqEnergy += p
	}
	freqEnergy /= size

	if math.Abs(energy-freqEnergy) > 1e-9*energy {
		t.Fatalf("Parseval mismatch: time=%v freq=%v", energy, freqEnergy)
	}
}

func TestBinFrequencies(t *testing.T) {
	freqs := BinFrequencies(512, 16000)
	if len(freqs) != 257 {
		t.Fatalf("len = %d, want 257", len(freqs))
	}
	if freqs[0] != 0 || freqs[1] != 31.25 || freqs[256] != 8000 {
		t.Fatalf("unexpected frequencies: %v %v %v", freqs[0], freqs[1], freqs[256])
	}
	if BinFrequencies(0, 16000) != nil {
		t.Fatal("expected nil for size 0")
	}
}
