package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-feature/internal/testutil"
)

func BenchmarkPower(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run(testutil.SizeName(size), func(b *testing.B) {
			inData := make([]complex128, size)
			for i := range inData {
				inData[i] = complex(float64(i)/10.0, float64(size-i)/10.0)
			}

			b.SetBytes(int64(size * 16))
			b.ResetTimer()

			for range b.N {
				_ = Power(inData)
			}
		})
	}
}

func BenchmarkPowerSpectrum(b *testing.B) {
	for _, size := range []int{256, 512, 2048} {
		b.Run(testutil.SizeName(size), func(b *testing.B) {
			f, err := NewFFT(size)
			if err != nil {
				b.Fatal(err)
			}
			x := testutil.DeterministicNoise(1, 1, size)

			b.SetBytes(int64(size * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := f.PowerSpectrum(x, false); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
