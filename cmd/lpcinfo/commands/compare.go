package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-feature/dsp/signal"
	"github.com/cwbudde/algo-feature/internal/config"
	"github.com/cwbudde/algo-feature/measure/envelope"
)

var (
	compareFrame   int
	compareFormat  string
	compareSummary bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [file.wav]",
	Short: "Overlay a frame's power spectrum with its LPC envelope (dB)",
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
		cmp, err := newComparator(cfg, sig)
		if err != nil {
			return err
		}
		ov, err := cmp.Compare(compareFrame)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		writeField(w, "frame", "%d of %d at %gs", ov.Index, cmp.Frames(), ov.TimePosition)
		writeField(w, "spectrum", "peak %.1f Hz (%.1f dB), centroid %.1f Hz, %d local maxima",
			ov.Spectrum.PeakFrequency, ov.Spectrum.PeakDB, ov.Spectrum.Centroid, ov.SpectrumPeaks)
		writeField(w, "envelope", "peak %.1f Hz (%.1f dB), centroid %.1f Hz, %d local maxima",
			ov.Envelope.PeakFrequency, ov.Envelope.PeakDB, ov.Envelope.Centroid, ov.EnvelopePeaks)
		if compareSummary {
			return nil
		}

		rows := make([][]string, len(ov.Frequencies))
		for i := range rows {
			rows[i] = []string{
				fmt.Sprintf("%.2f", ov.Frequencies[i]),
				fmt.Sprintf("%.2f", ov.SpectrumDB[i]),
				fmt.Sprintf("%.2f", ov.EnvelopeDB[i]),
			}
		}
		return writeTable(w, compareFormat, []string{"freq_hz", "spectrum_db", "envelope_db"}, rows)
	},
}

func init() {
	compareCmd.Flags().IntVarP(&compareFrame, "frame", "f", 0, "frame index")
	compareCmd.Flags().StringVar(&compareFormat, "format", "tsv", "output format: table or tsv")
	compareCmd.Flags().BoolVar(&compareSummary, "summary", false, "print only the summary")
	rootCmd.AddCommand(compareCmd)
}

// newComparator extracts features from sig and pairs them with sig, using the
// extractor's hop in samples so both curves of a frame share its start.
func newComparator(cfg config.Config, sig signal.Signal) (*envelope.Comparator, error) {
	e, vectors, err := extract(cfg, sig)
	if err != nil {
		return nil, err
	}
	_, hop, err := e.Framing(sig.SampleRate())
	if err != nil {
		return nil, err
	}

	envCfg := cfg.Envelope()
	envCfg.HopSamples = hop
	return envelope.NewComparator(sig, vectors, envCfg)
}
