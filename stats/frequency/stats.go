package frequency

import (
	"math"

	"github.com/cwbudde/algo-feature/dsp/core"
	"github.com/cwbudde/algo-feature/dsp/spectrum"
)

// Summary describes a one-sided magnitude spectrum.
type Summary struct {
	BinCount      int
	PeakBin       int
	PeakFrequency float64 // Hz
	PeakDB        float64 // 20·log10 of the peak magnitude
	Centroid      float64 // Hz
	Spread        float64 // Hz
	Flatness      float64 // 0..1, DC excluded
	Rolloff       float64 // Hz below which 85% of the energy lies
	Bandwidth     float64 // 3 dB width around the peak, Hz
}

// Summarize computes every descriptor of magnitude in one call.
// An empty spectrum yields PeakBin -1 and PeakDB -Inf.
func Summarize(magnitude []float64, sampleRate float64) Summary {
	s := Summary{
		BinCount: len(magnitude),
		PeakBin:  spectrum.PeakIndex(magnitude),
		PeakDB:   math.Inf(-1),
	}
	if s.PeakBin < 0 {
		return s
	}

	s.PeakFrequency = binFreq(s.PeakBin, sampleRate, s.BinCount)
	s.PeakDB = core.LinearToDB(magnitude[s.PeakBin])

	sum, energy := 0.0, 0.0
	for _, v := range magnitude {
		sum += v
		energy += v * v
	}
	s.Centroid = centroid(magnitude, sampleRate, sum)
	s.Spread = spread(magnitude, sampleRate, s.Centroid, sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = rolloff(magnitude, sampleRate, 0.85, energy)
	s.Bandwidth = Bandwidth(magnitude, sampleRate)
	return s
}

// FromPower returns sqrt(power) per bin. Negative bins map to NaN.
func FromPower(power []float64) []float64 {
	out := make([]float64, len(power))
	for i, p := range power {
		out[i] = math.Sqrt(p)
	}
	return out
}

// binFreq returns the frequency of bin i; the transform length is
// 2·(binCount-1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	if binCount < 2 {
		return 0
	}
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// PeakFrequency returns the frequency of the largest bin, or 0 when values
// holds nothing comparable.
func PeakFrequency(values []float64, sampleRate float64) float64 {
	i := spectrum.PeakIndex(values)
	if i < 0 {
		return 0
	}
	return binFreq(i, sampleRate, len(values))
}

// Centroid returns the magnitude-weighted mean frequency in Hz.
func Centroid(magnitude []float64, sampleRate float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, sampleRate, sum)
}

func centroid(magnitude []float64, sampleRate, sum float64) float64 {
	n := len(magnitude)
	if n < 2 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range magnitude {
		weighted += binFreq(i, sampleRate, n) * v
	}
	return weighted / sum
}

func spread(magnitude []float64, sampleRate, cent, sum float64) float64 {
	n := len(magnitude)
	if n < 2 || sum == 0 {
		return 0
	}
	acc := 0.0
	for i, v := range magnitude {
		d := binFreq(i, sampleRate, n) - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// Flatness returns the ratio of geometric to arithmetic mean over bins
// 1..N-1. Any zero bin makes it 0.
func Flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for _, v := range magnitude[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	bins := float64(n - 1)
	return math.Exp(sumLog/bins) / (sumLin / bins)
}

// Rolloff returns the lowest frequency below which fraction of the total
// energy (sum of squared magnitudes) lies.
func Rolloff(magnitude []float64, sampleRate, fraction float64) float64 {
	energy := 0.0
	for _, v := range magnitude {
		energy += v * v
	}
	return rolloff(magnitude, sampleRate, fraction, energy)
}

func rolloff(magnitude []float64, sampleRate, fraction, total float64) float64 {
	n := len(magnitude)
	if n < 2 || total == 0 {
		return 0
	}
	threshold := fraction * total
	acc := 0.0
	for i, v := range magnitude {
		acc += v * v
		if acc >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}
	return binFreq(n-1, sampleRate, n)
}

// Bandwidth returns the width in Hz between the points left and right of
// the peak where the magnitude falls to peak/sqrt(2), interpolated
// linearly between bins.
func Bandwidth(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	peak := spectrum.PeakIndex(magnitude)
	if n < 2 || peak < 0 || magnitude[peak] == 0 {
		return 0
	}

	threshold := magnitude[peak] / math.Sqrt2

	lower := 0.0
	for i := peak; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = crossing(i-1, magnitude[i-1], magnitude[i], threshold, sampleRate, n)
			break
		}
	}

	upper := binFreq(n-1, sampleRate, n)
	for i := peak; i < n-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upper = crossing(i, magnitude[i], magnitude[i+1], threshold, sampleRate, n)
			break
		}
	}

	return max(upper-lower, 0)
}

// crossing interpolates where the curve between bins lo and lo+1 meets
// threshold.
func crossing(lo int, magLo, magHi, threshold, sampleRate float64, n int) float64 {
	fLo := binFreq(lo, sampleRate, n)
	fHi := binFreq(lo+1, sampleRate, n)
	if magHi == magLo {
		return (fLo + fHi) / 2
	}
	return fLo + (threshold-magLo)/(magHi-magLo)*(fHi-fLo)
}
