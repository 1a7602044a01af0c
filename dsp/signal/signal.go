package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-feature/dsp/core"
)

var (
	// ErrOutOfRange is returned when a sample range lies outside the signal.
	ErrOutOfRange = errors.New("signal: range out of bounds")
	// ErrSampleRate is returned for a non-positive sampling rate.
	ErrSampleRate = errors.New("signal: sample rate must be > 0")
)

// Signal is a single-channel sample buffer with its sampling rate.
//
// A Signal is read-only once constructed: [New] copies the caller's samples
// and accessors never expose the backing array. Sub-ranges created with
// [Signal.Slice] share storage with their parent, which is safe because
// neither side can be mutated.
type Signal struct {
	samples    []float64
	sampleRate int
}

// New creates a signal from a copy of samples.
func New(samples []float64, sampleRate int) (Signal, error) {
	if sampleRate <= 0 {
		return Signal{}, fmt.Errorf("%w: %d", ErrSampleRate, sampleRate)
	}
	return Signal{
		samples:    append([]float64(nil), samples...),
		sampleRate: sampleRate,
	}, nil
}

// Len returns the number of samples.
func (s Signal) Len() int { return len(s.samples) }

// SampleRate returns the sampling rate in Hz.
func (s Signal) SampleRate() int { return s.sampleRate }

// Duration returns the signal length in seconds.
func (s Signal) Duration() float64 {
	if s.sampleRate <= 0 {
		return 0
	}
	return float64(len(s.samples)) / float64(s.sampleRate)
}

// At returns sample i.
func (s Signal) At(i int) float64 { return s.samples[i] }

// Samples returns a copy of the sample data.
func (s Signal) Samples() []float64 {
	return append([]float64(nil), s.samples...)
}

// Slice returns samples [start, end) as a new signal with the same rate.
func (s Signal) Slice(start, end int) (Signal, error) {
	if start < 0 || start > end || end > len(s.samples) {
		return Signal{}, fmt.Errorf("%w: [%d, %d) of %d samples", ErrOutOfRange, start, end, len(s.samples))
	}
	return Signal{
		samples:    s.samples[start:end:end],
		sampleRate: s.sampleRate,
	}, nil
}

// CopyTo fills dst with samples starting at start and returns the number
// of copied samples. Positions past the end of the signal are zeroed.
func (s Signal) CopyTo(dst []float64, start int) int {
	if start < 0 || start >= len(s.samples) {
		return core.PadInto(dst, nil)
	}
	return core.PadInto(dst, s.samples[start:])
}

// Mix returns the sample-wise sum of s and other.
// Both signals must share a sampling rate; the result has the longer length.
func (s Signal) Mix(other Signal) (Signal, error) {
	if s.sampleRate != other.sampleRate {
		return Signal{}, fmt.Errorf("signal: mix sample rate mismatch: %d != %d", s.sampleRate, other.sampleRate)
	}
	n := max(len(s.samples), len(other.samples))
	out := make([]float64, n)
	copy(out, s.samples)
	for i, v := range other.samples {
		out[i] += v
	}
	return Signal{samples: out, sampleRate: s.sampleRate}, nil
}
