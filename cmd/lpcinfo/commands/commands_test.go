package commands

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-feature/dsp/signal"
	"github.com/cwbudde/algo-feature/internal/testutil"
	"github.com/cwbudde/algo-feature/measure/envelope"
)

// resetFlags restores every flag of the tree to its default so tests do
// not leak state through the package-level command.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFeaturesSynthetic(t *testing.T) {
	out, err := runCmd(t, "--sine", "1000", "features", "--format", "tsv")
	if err != nil {
		t.Fatalf("features: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 98 {
		t.Fatalf("got %d lines, want header + 97 frames", len(lines))
	}
	if !strings.HasPrefix(lines[0], "time\terror\tlpc1\t") || !strings.HasSuffix(lines[0], "lpc16") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if fields := strings.Split(lines[2], "\t"); len(fields) != 18 || fields[0] != "0.01" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestFeaturesTableWithOrderOverride(t *testing.T) {
	out, err := runCmd(t, "--sine", "440", "--duration", "0.1", "--order", "4", "features")
	if err != nil {
		t.Fatalf("features: %v", err)
	}
	if !strings.Contains(out, "lpc4") || strings.Contains(out, "lpc5") {
		t.Fatalf("order override not applied:\n%s", out)
	}
}

func TestCompareSummary(t *testing.T) {
	out, err := runCmd(t, "--sine", "1000", "--noise", "0.01", "compare", "--frame", "10", "--summary")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "frame: 10 of 97") {
		t.Fatalf("missing frame line:\n%s", out)
	}
	if !strings.Contains(out, "spectrum: peak 1000.0 Hz") || !strings.Contains(out, "envelope: peak ") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestCompareCurves(t *testing.T) {
	out, err := runCmd(t, "--sine", "1000", "--noise", "0.01", "--fft-size", "256", "compare")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "freq_hz\tspectrum_db\tenvelope_db") {
		t.Fatalf("missing curve header:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 3+1+129 {
		t.Fatalf("got %d lines, want 3 summary + header + 129 bins", n)
	}
}

func TestCompareFrameOutOfRange(t *testing.T) {
	_, err := runCmd(t, "--sine", "1000", "compare", "--frame", "500")
	if !errors.Is(err, envelope.ErrFrameIndex) {
		t.Fatalf("error = %v, want ErrFrameIndex", err)
	}
}

func TestDCT(t *testing.T) {
	out, err := runCmd(t, "--sine", "1000", "--noise", "0.01", "--dct-size", "8", "dct", "--frame", "2")
	if err != nil {
		t.Fatalf("dct: %v", err)
	}
	if !strings.Contains(out, "257 bins, 8 coefficients") || !strings.Contains(out, "c7\t") || strings.Contains(out, "c8\t") {
		t.Fatalf("unexpected dct output:\n%s", out)
	}
}

func TestRoundTripError(t *testing.T) {
	rel, err := roundTripError(testutil.DeterministicNoise(3, 10, 257))
	if err != nil {
		t.Fatalf("roundTripError: %v", err)
	}
	if rel > 1e-9 {
		t.Fatalf("round-trip error %v", rel)
	}
}

func TestSynthThenAnalyse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	if _, err := runCmd(t, "--sine", "440", "--rate", "8000", "synth", path); err != nil {
		t.Fatalf("synth: %v", err)
	}

	out, err := runCmd(t, "features", path, "--format", "tsv")
	if err != nil {
		t.Fatalf("features: %v", err)
	}
	// 8000 samples, 256-sample window, 80-sample hop.
	if lines := strings.Count(out, "\n"); lines != 1+97 {
		t.Fatalf("got %d lines, want 98", lines)
	}
}

func TestReadWAVRoundTrip(t *testing.T) {
	x := testutil.DeterministicSine(300, 8000, 0.7, 800)
	sig, _ := signal.New(x, 8000)

	var buf bytes.Buffer
	if err := writeWAV(&buf, sig); err != nil {
		t.Fatalf("writeWAV: %v", err)
	}

	back, err := readWAV(&buf)
	if err != nil {
		t.Fatalf("readWAV: %v", err)
	}
	if back.SampleRate() != 8000 || back.Len() != len(x) {
		t.Fatalf("got %d samples at %d Hz", back.Len(), back.SampleRate())
	}
	for i := range x {
		if math.Abs(back.At(i)-x[i]) > 1.0/32768 {
			t.Fatalf("sample %d: %v vs %v", i, back.At(i), x[i])
		}
	}
}

func TestConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	if err := os.WriteFile(path, []byte("order: 8\nwindow: hann\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "order: 8") || !strings.Contains(out, "window: hann") {
		t.Fatalf("config file not applied:\n%s", out)
	}

	out, err = runCmd(t, "--config", path, "--order", "10", "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "order: 10") {
		t.Fatalf("flag override not applied:\n%s", out)
	}
}

func TestErrors(t *testing.T) {
	if _, err := runCmd(t, "features"); err == nil {
		t.Fatal("expected error without input")
	}
	if _, err := runCmd(t, "--fft-size", "100", "--sine", "440", "features"); err == nil {
		t.Fatal("expected error for invalid fft size")
	}
	if _, err := runCmd(t, "features", filepath.Join(t.TempDir(), "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want ErrNotExist", err)
	}
	if _, err := runCmd(t, "synth", filepath.Join(t.TempDir(), "x.wav")); err == nil {
		t.Fatal("expected error for synth without --sine")
	}
}

func TestWindows(t *testing.T) {
	out, err := runCmd(t, "windows")
	if err != nil {
		t.Fatalf("windows: %v", err)
	}
	for _, name := range []string{"rectangular", "hann", "kaiser"} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing %q in:\n%s", name, out)
		}
	}
}
