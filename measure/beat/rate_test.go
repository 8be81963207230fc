package beat

import (
	"testing"

	"github.com/cwbudde/algo-vitals/internal/testutil"
)

func TestIntervals(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Intervals([]int{0, 500, 1100}, 500), []float64{1, 1.2}, 1e-12)

	if Intervals([]int{7}, 500) != nil {
		t.Fatal("single peak should have no intervals")
	}
	if Intervals([]int{0, 1}, 0) != nil {
		t.Fatal("invalid rate should have no intervals")
	}
}

func TestRate(t *testing.T) {
	bpm, ok := Rate([]int{0, 500, 1000, 1500}, 500)
	if !ok {
		t.Fatal("Rate should succeed")
	}
	testutil.RequireNearlyEqual(t, "bpm", bpm, 60, 1e-12)

	if _, ok := Rate(nil, 500); ok {
		t.Fatal("no peaks should fail")
	}
	if _, ok := Rate([]int{3}, 500); ok {
		t.Fatal("one peak should fail")
	}
}

func TestIntervalStd(t *testing.T) {
	testutil.RequireNearlyEqual(t, "std", intervalStd([]float64{1, 2, 3}), 0.816496580927726, 1e-12)
	if intervalStd([]float64{1}) != 0 {
		t.Fatal("single interval should have zero spread")
	}
}
