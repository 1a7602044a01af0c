package envelope

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-feature/dsp/core"
	"github.com/cwbudde/algo-feature/dsp/signal"
	"github.com/cwbudde/algo-feature/dsp/spectrum"
	"github.com/cwbudde/algo-feature/feature"
	"github.com/cwbudde/algo-feature/feature/lpc"
	frequencystats "github.com/cwbudde/algo-feature/stats/frequency"
)

const (
	defaultHopSize = lpc.DefaultHopSize
	defaultFFTSize = 512
)

var (
	// ErrFrameIndex is returned for an index outside the vector list.
	ErrFrameIndex = errors.New("envelope: frame index out of range")
	// ErrInvalidConfig is returned for a negative or NaN hop, or a hop that
	// rounds to zero samples.
	ErrInvalidConfig = errors.New("envelope: invalid config")
)

// Config holds comparison parameters. Zero values select a 10 ms hop and a
// 512-point FFT.
type Config struct {
	// HopSize is the extractor hop in seconds.
	HopSize float64
	// HopSamples, when positive, is the extractor hop in samples and takes
	// precedence over HopSize. Otherwise it is round(HopSize·sampleRate),
	// the rounding lpc.Extractor.Framing uses. Frame i starts at
	// i·HopSamples.
	HopSamples int
	// FFTSize is the transform length for both curves. Power of two.
	FFTSize int
	// Normalize divides the signal power spectrum by FFTSize.
	Normalize bool
}

// Overlay is the dB comparison of one frame.
type Overlay struct {
	Index        int
	TimePosition float64
	Frequencies  []float64 // Hz per bin
	SpectrumDB   []float64
	EnvelopeDB   []float64

	Spectrum frequencystats.Summary
	Envelope frequencystats.Summary

	// Local maxima of each dB curve.
	SpectrumPeaks int
	EnvelopePeaks int
}

// Comparator pairs a signal with the LPC vectors extracted from it.
type Comparator struct {
	sig     signal.Signal
	vectors []feature.Vector
	cfg     Config
	fft     *spectrum.FFT
	frame   []float64
}

// NewComparator validates cfg and prepares the FFT.
func NewComparator(sig signal.Signal, vectors []feature.Vector, cfg Config) (*Comparator, error) {
	cfg, err := normalizeConfig(cfg, sig.SampleRate())
	if err != nil {
		return nil, err
	}

	fft, err := spectrum.NewFFT(cfg.FFTSize)
	if err != nil {
		return nil, err
	}

	return &Comparator{
		sig:     sig,
		vectors: append([]feature.Vector(nil), vectors...),
		cfg:     cfg,
		fft:     fft,
	}, nil
}

func normalizeConfig(cfg Config, sampleRate int) (Config, error) {
	if cfg.HopSize == 0 {
		cfg.HopSize = defaultHopSize
	}
	if !(cfg.HopSize > 0) || math.IsInf(cfg.HopSize, 1) {
		return cfg, fmt.Errorf("%w: hop size %g", ErrInvalidConfig, cfg.HopSize)
	}
	if cfg.HopSamples < 0 {
		return cfg, fmt.Errorf("%w: hop of %d samples", ErrInvalidConfig, cfg.HopSamples)
	}
	if cfg.HopSamples == 0 {
		cfg.HopSamples = int(math.Round(float64(sampleRate) * cfg.HopSize))
		if cfg.HopSamples < 1 {
			return cfg, fmt.Errorf("%w: hop %gs is under one sample at %d Hz", ErrInvalidConfig, cfg.HopSize, sampleRate)
		}
	}
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}
	return cfg, nil
}

// Config returns the effective configuration.
func (c *Comparator) Config() Config { return c.cfg }

// Frames returns the number of feature vectors.
func (c *Comparator) Frames() int { return len(c.vectors) }

// Bins returns the number of points in each curve.
func (c *Comparator) Bins() int { return c.fft.Bins() }

func (c *Comparator) checkIndex(idx int) error {
	if idx < 0 || idx >= len(c.vectors) {
		return fmt.Errorf("%w: %d of %d", ErrFrameIndex, idx, len(c.vectors))
	}
	return nil
}

// Spectrum returns the power spectrum of FFTSize samples starting at
// sample idx·HopSamples, the start of extractor frame idx. Frames running
// past the end of the signal are zero-padded.
func (c *Comparator) Spectrum(idx int) ([]float64, error) {
	if err := c.checkIndex(idx); err != nil {
		return nil, err
	}

	c.frame = core.EnsureLen(c.frame, c.cfg.FFTSize)
	c.sig.CopyTo(c.frame, idx*c.cfg.HopSamples)

	return c.fft.PowerSpectrum(c.frame, c.cfg.Normalize)
}

// Envelope returns |H|^2 of the all-pole filter of vector idx on the
// FFTSize grid.
func (c *Comparator) Envelope(idx int) ([]float64, error) {
	if err := c.checkIndex(idx); err != nil {
		return nil, err
	}

	f, err := lpc.EnvelopeFilter(c.vectors[idx])
	if err != nil {
		return nil, fmt.Errorf("envelope: frame %d: %w", idx, err)
	}
	resp, err := f.FrequencyResponse(c.cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("envelope: frame %d: %w", idx, err)
	}
	return resp.Power(), nil
}

// Compare builds the dB overlay of frame idx.
func (c *Comparator) Compare(idx int) (Overlay, error) {
	power, err := c.Spectrum(idx)
	if err != nil {
		return Overlay{}, err
	}
	env, err := c.Envelope(idx)
	if err != nil {
		return Overlay{}, err
	}

	sr := float64(c.sig.SampleRate())
	ov := Overlay{
		Index:        idx,
		TimePosition: c.vectors[idx].TimePosition,
		Frequencies:  spectrum.BinFrequencies(c.cfg.FFTSize, sr),
		SpectrumDB:   core.PowerToDB(power),
		EnvelopeDB:   core.PowerToDB(env),
		Spectrum:     frequencystats.Summarize(frequencystats.FromPower(power), sr),
		Envelope:     frequencystats.Summarize(frequencystats.FromPower(env), sr),
	}
	ov.SpectrumPeaks = spectrum.CountLocalMaxima(ov.SpectrumDB)
	ov.EnvelopePeaks = spectrum.CountLocalMaxima(ov.EnvelopeDB)

	return ov, nil
}
