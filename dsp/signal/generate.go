package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-feature/dsp/core"
)

// Generator creates deterministic test signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave of the given number of samples.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) (Signal, error) {
	return g.Multisine([]float64{freqHz}, amplitude, samples)
}

// Multisine generates the sum of equal-amplitude sines, one per frequency.
func (g *Generator) Multisine(freqsHz []float64, amplitude float64, samples int) (Signal, error) {
	if samples <= 0 {
		return Signal{}, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if len(freqsHz) == 0 {
		return Signal{}, fmt.Errorf("sine needs at least one frequency")
	}
	nyquist := float64(g.cfg.SampleRate) / 2
	for _, f := range freqsHz {
		if f < 0 || f > nyquist {
			return Signal{}, fmt.Errorf("sine frequency must be in [0, %g]: %g", nyquist, f)
		}
	}

	out := make([]float64, samples)
	for _, f := range freqsHz {
		step := 2 * math.Pi * f / float64(g.cfg.SampleRate)
		for i := range out {
			out[i] += amplitude * math.Sin(step*float64(i))
		}
	}
	return Signal{samples: out, sampleRate: g.cfg.SampleRate}, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) (Signal, error) {
	if samples <= 0 {
		return Signal{}, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return Signal{}, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return Signal{samples: out, sampleRate: g.cfg.SampleRate}, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
