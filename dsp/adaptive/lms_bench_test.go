package adaptive

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-vitals/internal/testutil"
)

func BenchmarkLMSProcess(b *testing.B) {
	for _, taps := range []int{8, 32, 128} {
		b.Run(fmt.Sprintf("taps%d", taps), func(b *testing.B) {
			ref := testutil.DeterministicNoise(1, 1, 4096)
			primary := testutil.DeterministicNoise(2, 1, 4096)

			b.SetBytes(int64(len(primary) * 8))
			b.ResetTimer()

			for range b.N {
				l, _ := NewLMS(taps, 0.001)
				if _, err := l.Process(primary, ref); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
