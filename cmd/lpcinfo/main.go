// Command lpcinfo runs frame-based LPC analysis on WAV files or synthetic
// tones and prints features, spectrum/envelope overlays and DCT summaries.
//
// Usage:
//
//	lpcinfo [flags] <command> [args]
//
// Commands:
//
//	features  - LPC feature table, one row per frame
//	compare   - power spectrum vs. LPC envelope of one frame (dB)
//	dct       - DCT-II of one frame's envelope
//	synth     - write a test tone as 16-bit WAV
//	windows   - list analysis windows
//	config    - print the effective configuration
//
// Examples:
//
//	lpcinfo features speech.wav
//	lpcinfo --sine 440 --duration 0.5 compare --frame 10
//	lpcinfo -c analysis.yaml --order 12 dct speech.wav --frame 3
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-feature/cmd/lpcinfo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
