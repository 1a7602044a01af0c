package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-feature/dsp/core"
	"github.com/cwbudde/algo-feature/dsp/transform"
)

var dctFrame int

var dctCmd = &cobra.Command{
	Use:   "dct [file.wav]",
	Short: "Print the orthonormal DCT-II of a frame's LPC envelope (dB)",
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
		power, err := cmp.Envelope(dctFrame)
		if err != nil {
			return err
		}
		curve := core.PowerToDB(power)

		d, err := transform.NewDCT2(len(curve), cfg.DCTSize)
		if err != nil {
			return err
		}
		coeffs := make([]float64, cfg.DCTSize)
		d.DirectN(curve, coeffs)

		roundTrip, err := roundTripError(curve)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		writeField(w, "frame", "%d (%d bins, %d coefficients)", dctFrame, len(curve), cfg.DCTSize)
		writeField(w, "round-trip", "%.3e relative error", roundTrip)
		for k, c := range coeffs {
			fmt.Fprintf(w, "c%d\t%.4f\n", k, c)
		}
		return nil
	},
}

func init() {
	dctCmd.Flags().IntVarP(&dctFrame, "frame", "f", 0, "frame index")
	rootCmd.AddCommand(dctCmd)
}

// roundTripError reports the L2 relative error of Inverse(Direct(x)).
func roundTripError(x []float64) (float64, error) {
	d, err := transform.NewDCT2(len(x), len(x))
	if err != nil {
		return 0, err
	}
	coeffs := make([]float64, len(x))
	back := make([]float64, len(x))
	d.Direct(x, coeffs)
	d.Inverse(coeffs, back)

	var num, den float64
	for i := range x {
		diff := back[i] - x[i]
		num += diff * diff
		den += x[i] * x[i]
	}
	if den == 0 {
		return math.Sqrt(num), nil
	}
	return math.Sqrt(num / den), nil
}
