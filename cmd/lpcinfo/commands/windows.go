package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-feature/dsp/window"
)

var windowsSize int

var windowTypes = []window.Type{
	window.TypeRectangular,
	window.TypeTriangle,
	window.TypeHann,
	window.TypeHamming,
	window.TypeBlackman,
	window.TypeGauss,
	window.TypeKaiser,
}

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List analysis window types with their coherent gain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0, len(windowTypes))
		for _, t := range windowTypes {
			gain, err := window.CoherentGain(window.Generate(t, windowsSize))
			if err != nil {
				return err
			}
			rows = append(rows, []string{t.String(), fmt.Sprintf("%.4f", gain)})
		}
		return writeTable(cmd.OutOrStdout(), "table", []string{"window", "coherent_gain"}, rows)
	},
}

func init() {
	windowsCmd.Flags().IntVar(&windowsSize, "size", 512, "window length in samples")
	rootCmd.AddCommand(windowsCmd)
}
