package beat

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the beats found in one buffer.
type Summary struct {
	Peaks        []int
	MeanInterval float64 // seconds
	IntervalStd  float64 // seconds
	BPM          float64
	Valid        bool // false with fewer than two beats
}

// Intervals returns the spacing between consecutive beats in seconds.
// Fewer than two beats yield nil.
func Intervals(peaks []int, sampleRate float64) []float64 {
	if len(peaks) < 2 || !(sampleRate > 0) {
		return nil
	}

	out := make([]float64, len(peaks)-1)
	for i := range out {
		out[i] = float64(peaks[i+1]-peaks[i]) / sampleRate
	}
	return out
}

// Rate returns 60 divided by the mean beat interval. ok is false with
// fewer than two beats.
func Rate(peaks []int, sampleRate float64) (bpm float64, ok bool) {
	rr := Intervals(peaks, sampleRate)
	if len(rr) == 0 {
		return 0, false
	}

	mean := stat.Mean(rr, nil)
	if mean <= 0 {
		return 0, false
	}
	return 60 / mean, true
}

func intervalStd(rr []float64) float64 {
	if len(rr) < 2 {
		return 0
	}
	_, variance := stat.PopMeanVariance(rr, nil)
	return math.Sqrt(variance)
}
