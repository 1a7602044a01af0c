package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-feature/dsp/signal"
	"github.com/cwbudde/algo-feature/feature"
	"github.com/cwbudde/algo-feature/feature/lpc"
	"github.com/cwbudde/algo-feature/internal/config"
)

var featuresFormat string

var featuresCmd = &cobra.Command{
	Use:   "features [file.wav]",
	Short: "Print LPC feature vectors, one row per frame",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := analysisConfig(cmd)
		if err != nil {
			return err
		}
		sig, err := loadInput(args)
		if err != nil {
			return err
		}

		e, vectors, err := extract(cfg, sig)
		if err != nil {
			return err
		}

		headers := append([]string{"time"}, e.FeatureDescriptions()...)
		rows := make([][]string, len(vectors))
		for i, v := range vectors {
			rows[i] = append([]string{fmt.Sprintf("%g", v.TimePosition)}, formatFloats(v.Features, "%.4f")...)
		}
		return writeTable(cmd.OutOrStdout(), featuresFormat, headers, rows)
	},
}

func init() {
	featuresCmd.Flags().StringVar(&featuresFormat, "format", "table", "output format: table or tsv")
	rootCmd.AddCommand(featuresCmd)
}

// extract runs the configured LPC extractor over sig.
func extract(cfg config.Config, sig signal.Signal) (*lpc.Extractor, []feature.Vector, error) {
	e, err := lpc.NewExtractor(cfg.Order, cfg.ExtractorOptions()...)
	if err != nil {
		return nil, nil, err
	}
	vectors, err := e.ComputeFrom(sig)
	if err != nil {
		return nil, nil, err
	}

	frame, hop, _ := e.Framing(sig.SampleRate())
	slog.Debug("extracted features", "frames", len(vectors), "frame_samples", frame, "hop_samples", hop)
	return e, vectors, nil
}
