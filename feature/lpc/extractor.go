package lpc

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	dsplpc "github.com/cwbudde/algo-feature/dsp/lpc"
	"github.com/cwbudde/algo-feature/dsp/signal"
	"github.com/cwbudde/algo-feature/dsp/window"
	"github.com/cwbudde/algo-feature/feature"
)

var (
	// ErrInvalidOrder is returned for a prediction order below 1.
	ErrInvalidOrder = errors.New("lpc: order must be >= 1")
	// ErrInvalidFraming is returned when window or hop sizes do not map to at
	// least one sample, or when the extractor options are out of range.
	ErrInvalidFraming = errors.New("lpc: invalid framing")
)

// Extractor computes LPC feature vectors over fixed-size frames.
type Extractor struct {
	order int
	cfg   config
}

var _ feature.Extractor = (*Extractor)(nil)

// NewExtractor creates an extractor of the given prediction order.
func NewExtractor(order int, opts ...Option) (*Extractor, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !(cfg.windowSize > 0) || !(cfg.hopSize > 0) {
		return nil, fmt.Errorf("%w: window=%gs hop=%gs", ErrInvalidFraming, cfg.windowSize, cfg.hopSize)
	}
	if !(cfg.preEmphasis >= 0 && cfg.preEmphasis < 1) {
		return nil, fmt.Errorf("%w: pre-emphasis %g outside [0, 1)", ErrInvalidFraming, cfg.preEmphasis)
	}

	return &Extractor{order: order, cfg: cfg}, nil
}

// Order returns the prediction order.
func (e *Extractor) Order() int { return e.order }

// WindowSize returns the frame length in seconds.
func (e *Extractor) WindowSize() float64 { return e.cfg.windowSize }

// HopSize returns the frame advance in seconds.
func (e *Extractor) HopSize() float64 { return e.cfg.hopSize }

// FeatureCount returns order+1.
func (e *Extractor) FeatureCount() int { return e.order + 1 }

// FeatureDescriptions returns "error" followed by "lpc1" .. "lpcP".
func (e *Extractor) FeatureDescriptions() []string {
	names := make([]string, e.order+1)
	names[0] = "error"
	for i := 1; i <= e.order; i++ {
		names[i] = "lpc" + strconv.Itoa(i)
	}
	return names
}

// Framing returns the frame and hop lengths in samples at sampleRate.
func (e *Extractor) Framing(sampleRate int) (frame, hop int, err error) {
	frame = int(math.Round(float64(sampleRate) * e.cfg.windowSize))
	hop = int(math.Round(float64(sampleRate) * e.cfg.hopSize))
	if frame < 1 || hop < 1 {
		return 0, 0, fmt.Errorf("%w: %d Hz gives frame=%d hop=%d samples", ErrInvalidFraming, sampleRate, frame, hop)
	}
	return frame, hop, nil
}

// FrameCount returns the number of complete frames in n samples.
func FrameCount(n, frame, hop int) int {
	if frame < 1 || hop < 1 || n < frame {
		return 0
	}
	return (n-frame)/hop + 1
}

// ComputeFrom extracts one vector per complete frame of sig.
// Signals shorter than a frame yield an empty slice.
func (e *Extractor) ComputeFrom(sig signal.Signal) ([]feature.Vector, error) {
	return e.ComputeFromRange(sig, 0, sig.Len())
}

// ComputeFromRange extracts vectors from samples [start, end) of sig.
// Time positions are measured from the beginning of sig.
func (e *Extractor) ComputeFromRange(sig signal.Signal, start, end int) ([]feature.Vector, error) {
	if start < 0 || start > end || end > sig.Len() {
		return nil, fmt.Errorf("%w: [%d, %d) of %d samples", signal.ErrOutOfRange, start, end, sig.Len())
	}

	frameLen, hopLen, err := e.Framing(sig.SampleRate())
	if err != nil {
		return nil, err
	}

	count := FrameCount(end-start, frameLen, hopLen)
	vectors := make([]feature.Vector, 0, count)
	if count == 0 {
		return vectors, nil
	}

	ac, err := dsplpc.NewAutocorrelator(frameLen)
	if err != nil {
		return nil, err
	}

	var coeffs []float64
	if e.cfg.window != window.TypeRectangular {
		coeffs = window.Generate(e.cfg.window, frameLen)
	}

	offset := float64(start) / float64(sig.SampleRate())
	frame := make([]float64, frameLen)
	r := make([]float64, e.order+1)

	for i := range count {
		pos := start + i*hopLen
		sig.CopyTo(frame, pos)

		if e.cfg.preEmphasis > 0 {
			prev := 0.0
			if pos > 0 {
				prev = sig.At(pos - 1)
			}
			preEmphasize(frame, prev, e.cfg.preEmphasis)
		}
		if coeffs != nil {
			if err := window.ApplyCoefficients(frame, coeffs); err != nil {
				return nil, err
			}
		}

		if err := ac.Compute(r, frame); err != nil {
			return nil, err
		}
		a, predErr, err := dsplpc.LevinsonDurbin(r, e.order)
		if err != nil {
			return nil, err
		}

		features := make([]float64, e.order+1)
		features[0] = predErr
		copy(features[1:], a[1:])

		vectors = append(vectors, feature.Vector{
			Features:     features,
			TimePosition: offset + float64(i)*e.cfg.hopSize,
		})
	}

	return vectors, nil
}

// preEmphasize filters buf in place; prev is the sample preceding buf[0].
func preEmphasize(buf []float64, prev, alpha float64) {
	for n := len(buf) - 1; n > 0; n-- {
		buf[n] -= alpha * buf[n-1]
	}
	buf[0] -= alpha * prev
}
