package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(1000))
	x, err := g.Sine(250, 1, 5)
	if err != nil {
		panic(err)
	}
	if math.Abs(x[4]) < 1e-12 {
		x[4] = 0
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleGenerator_ECG() {
	g := signal.NewGenerator(core.WithSampleRate(500))

	_, clean, err := g.ECG(2, 60, 0.1)
	if err != nil {
		panic(err)
	}

	fmt.Printf("samples=%d r=%.1f\n", len(clean), clean[200])

	// Output:
	// samples=1000 r=1.0
}
