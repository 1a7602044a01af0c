package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"
	gowav "github.com/youpy/go-wav"

	"github.com/cwbudde/algo-feature/dsp/signal"
)

var synthCmd = &cobra.Command{
	Use:   "synth <out.wav>",
	Short: "Write the synthetic input (--sine, --noise) as 16-bit mono WAV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputSine <= 0 {
			return fmt.Errorf("--sine frequency is required")
		}
		sig, err := synthesize()
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		bw := bufio.NewWriter(f)
		if err := writeWAV(bw, sig); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		if err := bw.Flush(); err != nil {
			return err
		}

		slog.Info("wrote wav", "path", args[0], "samples", sig.Len(), "rate", sig.SampleRate())
		return f.Close()
	},
}

func init() {
	rootCmd.AddCommand(synthCmd)
}

// writeWAV encodes sig as 16-bit PCM mono, clipping to [-1, 1].
func writeWAV(w io.Writer, sig signal.Signal) error {
	samples := make([]gowav.Sample, sig.Len())
	for i := range samples {
		v := math.Max(-1, math.Min(1, sig.At(i)))
		samples[i].Values[0] = int(math.Round(v * math.MaxInt16))
	}

	ww := gowav.NewWriter(w, uint32(len(samples)), 1, uint32(sig.SampleRate()), 16)
	return ww.WriteSamples(samples)
}
