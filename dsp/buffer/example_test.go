package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-vitals/dsp/buffer"
)

func ExampleWindower() {
	w, err := buffer.NewWindower(4, 2, func(win []float64) {
		fmt.Println(win)
	})
	if err != nil {
		panic(err)
	}

	w.Write([]float64{1, 2, 3, 4, 5, 6, 7})

	// Output:
	// [1 2 3 4]
	// [3 4 5 6]
}

func ExampleRing() {
	r, _ := buffer.NewRing(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.Push(v)
	}

	fmt.Println(r.Snapshot(nil), r.Mean())

	// Output:
	// [3 4 5] 4
}
