package smooth

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// MovingAverage returns the width-sample mean of x.
//
// The input is padded with width/2 copies of its first and last sample, and
// output i is the mean of padded[i : i+width]. For even widths the window
// therefore leans one sample towards the past. The result has len(x).
func MovingAverage(x []float64, width int) ([]float64, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: moving average width must be >= 1: %d", core.ErrInvalidParameter, width)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty input", core.ErrInsufficientData)
	}

	half := width / 2
	padded := make([]float64, len(x)+2*half)
	for i := range half {
		padded[i] = x[0]
		padded[half+len(x)+i] = x[len(x)-1]
	}
	copy(padded[half:], x)

	out := make([]float64, len(x))
	scale := 1 / float64(width)
	for i := range out {
		out[i] = floats.Sum(padded[i:i+width]) * scale
	}

	return out, nil
}

// Median returns the centred running median of x over an odd width.
// Samples beyond either end count as zero.
func Median(x []float64, width int) ([]float64, error) {
	if width < 1 || width%2 == 0 {
		return nil, fmt.Errorf("%w: median width must be odd and >= 1: %d", core.ErrInvalidParameter, width)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty input", core.ErrInsufficientData)
	}

	half := width / 2
	win := make([]float64, width)
	out := make([]float64, len(x))

	for i := range x {
		for k := range win {
			j := i - half + k
			if j < 0 || j >= len(x) {
				win[k] = 0
				continue
			}
			win[k] = x[j]
		}

		slices.Sort(win)
		out[i] = win[half]
	}

	return out, nil
}
