package smooth

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/internal/testutil"
)

func TestMovingAverageConstantInput(t *testing.T) {
	x := testutil.DC(0.7, 50)

	for _, w := range []int{1, 2, 5, 8} {
		y, err := MovingAverage(x, w)
		if err != nil {
			t.Fatalf("w=%d: %v", w, err)
		}
		testutil.RequireSliceNearlyEqual(t, y, x, 1e-12)
	}
}

func TestMovingAverageEdgePadding(t *testing.T) {
	// padded = [1, 1, 2, 3, 4, 4]
	y, err := MovingAverage([]float64{1, 2, 3, 4}, 3)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, y, []float64{4.0 / 3, 2, 3, 11.0 / 3}, 1e-12)
}

func TestMovingAverageEvenWidth(t *testing.T) {
	// padded = [1, 1, 1, 2, 3, 4, 4, 4], windows of 4 starting at 0..3.
	y, err := MovingAverage([]float64{1, 2, 3, 4}, 4)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, y, []float64{1.25, 1.75, 2.5, 3.25}, 1e-12)
}

func TestMovingAverageErrors(t *testing.T) {
	if _, err := MovingAverage([]float64{1}, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("width 0: err=%v", err)
	}
	if _, err := MovingAverage(nil, 3); !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("empty: err=%v", err)
	}
}

func TestMedianRemovesSpikes(t *testing.T) {
	x := []float64{1, 1, 9, 1, 1, 1, -7, 1, 1}

	y, err := Median(x, 3)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, y, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}, 0)
}

func TestMedianZeroPadsEdges(t *testing.T) {
	y, err := Median([]float64{5, 5, 5, 5, 5}, 5)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, y, []float64{5, 5, 5, 5, 5}, 0)

	y, err = Median([]float64{3, 4, 5}, 5)
	if err != nil {
		t.Fatal(err)
	}
	// windows: [0 0 3 4 5], [0 3 4 5 0], [3 4 5 0 0]
	testutil.RequireSliceNearlyEqual(t, y, []float64{3, 3, 3}, 0)
}

func TestMedianWidthOneIsIdentity(t *testing.T) {
	x := []float64{3, -1, 2}
	y, err := Median(x, 1)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, y, x, 0)
}

func TestMedianRejectsEvenWidth(t *testing.T) {
	for _, w := range []int{0, 2, 4, -3} {
		if _, err := Median([]float64{1, 2, 3}, w); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("w=%d: err=%v, want ErrInvalidParameter", w, err)
		}
	}
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	x := []float64{3, 1, 2}
	if _, err := Median(x, 3); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, x, []float64{3, 1, 2}, 0)
}
