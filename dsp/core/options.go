package core

// ProcessorConfig defines settings shared by signal producers and analyzers.
type ProcessorConfig struct {
	// SampleRate in Hz.
	SampleRate int
	// FFTSize is the transform length used for spectral views.
	FFTSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used for speech-band analysis.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 16000,
		FFTSize:    512,
	}
}

// WithSampleRate sets the sample rate.
func WithSampleRate(sampleRate int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the FFT size. Values that are not a power of two are ignored.
func WithFFTSize(size int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if IsPowerOfTwo(size) {
			cfg.FFTSize = size
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
