// Package envelope overlays the FFT power spectrum of an analysis frame with
// the all-pole envelope implied by that frame's LPC feature vector.
//
// Both curves share the same one-sided FFT grid and the same power-to-dB
// conversion (10·log10), so they can be plotted on one axis:
//
//	cmp, err := envelope.NewComparator(sig, vectors, envelope.Config{HopSize: 0.010, FFTSize: 512})
//	ov, err := cmp.Compare(0)
//	fmt.Println(ov.Spectrum.PeakFrequency, ov.Envelope.PeakFrequency)
//
// A Comparator reuses one FFT and is not safe for concurrent use.
package envelope
