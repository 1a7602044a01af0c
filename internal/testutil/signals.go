// Package testutil holds deterministic signal builders and tolerance checks
// shared by package tests.
package testutil

import (
	"fmt"
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoisySine adds seeded white noise of noiseAmp to a sine of amplitude amp.
// A small noise floor keeps LPC autocorrelation matrices well conditioned.
func NoisySine(freqHz, sampleRate, amp, noiseAmp float64, seed int64, length int) []float64 {
	out := DeterministicSine(freqHz, sampleRate, amp, length)
	noise := DeterministicNoise(seed, noiseAmp, length)
	for i := range out {
		out[i] += noise[i]
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// SizeName formats a benchmark size label such as "512" or "4K".
func SizeName(n int) string {
	if n >= 1024 && n%1024 == 0 {
		return fmt.Sprintf("%dK", n/1024)
	}
	return fmt.Sprintf("%d", n)
}
