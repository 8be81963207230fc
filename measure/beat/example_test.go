package beat_test

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/measure/beat"
)

func ExampleDetector_Detect() {
	const fs = 10.0

	x := []float64{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0}

	d, err := beat.NewDetector(fs)
	if err != nil {
		panic(err)
	}

	peaks := d.Detect(x)
	bpm, _ := beat.Rate(peaks, fs)
	fmt.Println(peaks, bpm)
	// Output:
	// [1 11 21] 60
}
