package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mjibson/go-dsp/wav"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-feature/dsp/core"
	"github.com/cwbudde/algo-feature/dsp/signal"
)

var (
	inputSine     float64
	inputDuration float64
	inputRate     int
	inputNoise    float64
	inputSeed     int64
)

func addInputFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&inputSine, "sine", 0, "use a synthetic sine of this frequency (Hz) instead of a file")
	fs.Float64Var(&inputDuration, "duration", 1, "synthetic signal duration in seconds")
	fs.IntVar(&inputRate, "rate", 16000, "synthetic signal sample rate")
	fs.Float64Var(&inputNoise, "noise", 0, "white noise amplitude added to the synthetic sine")
	fs.Int64Var(&inputSeed, "seed", 1, "noise seed")
}

// loadInput returns the signal named by args or the synthetic tone.
func loadInput(args []string) (signal.Signal, error) {
	if inputSine > 0 {
		return synthesize()
	}
	if len(args) == 0 {
		return signal.Signal{}, errors.New("input WAV file is required (or use --sine)")
	}

	path := args[0]
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return signal.Signal{}, err
		}
		defer f.Close()
		r = f
	}

	sig, err := readWAV(r)
	if err != nil {
		return signal.Signal{}, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("loaded input", "path", path, "samples", sig.Len(), "rate", sig.SampleRate())
	return sig, nil
}

func synthesize() (signal.Signal, error) {
	n := int(inputDuration * float64(inputRate))
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(inputRate)},
		signal.WithSeed(inputSeed),
	)

	sig, err := gen.Sine(inputSine, 0.5, n)
	if err != nil {
		return signal.Signal{}, err
	}
	if inputNoise > 0 {
		noise, err := gen.WhiteNoise(inputNoise, n)
		if err != nil {
			return signal.Signal{}, err
		}
		if sig, err = sig.Mix(noise); err != nil {
			return signal.Signal{}, err
		}
	}
	slog.Debug("synthesized input", "freq", inputSine, "samples", n, "rate", inputRate)
	return sig, nil
}

// readWAV decodes the first channel of a PCM or float WAV stream.
func readWAV(r io.Reader) (signal.Signal, error) {
	w, err := wav.New(r)
	if err != nil {
		return signal.Signal{}, err
	}
	if w.NumChannels == 0 {
		return signal.Signal{}, errors.New("wav: no channels")
	}

	data, err := w.ReadSamples(w.Samples)
	if err != nil {
		return signal.Signal{}, err
	}

	step := int(w.NumChannels)
	var samples []float64
	switch d := data.(type) {
	case []uint8:
		samples = make([]float64, 0, len(d)/step)
		for i := 0; i < len(d); i += step {
			samples = append(samples, (float64(d[i])-128)/128)
		}
	case []int16:
		samples = make([]float64, 0, len(d)/step)
		for i := 0; i < len(d); i += step {
			samples = append(samples, float64(d[i])/32768)
		}
	case []float32:
		samples = make([]float64, 0, len(d)/step)
		for i := 0; i < len(d); i += step {
			samples = append(samples, float64(d[i]))
		}
	default:
		return signal.Signal{}, fmt.Errorf("wav: unsupported sample type %T", d)
	}

	return signal.New(samples, int(w.SampleRate))
}
