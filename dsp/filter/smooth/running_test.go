package smooth

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-vitals/dsp/core"
	"github.com/cwbudde/algo-vitals/internal/testutil"
)

func TestRunningStartup(t *testing.T) {
	r, err := NewRunning(4)
	if err != nil {
		t.Fatal(err)
	}
	if r.Average() != 0 {
		t.Fatal("average before first sample should be 0")
	}

	got := []float64{r.Process(4), r.Process(8), r.Process(0), r.Process(4), r.Process(12)}
	testutil.RequireSliceNearlyEqual(t, got, []float64{4, 6, 4, 4, 6}, 1e-12)

	if r.Count() != 4 || r.Width() != 4 {
		t.Fatalf("count=%d width=%d", r.Count(), r.Width())
	}
	testutil.RequireNearlyEqual(t, "average", r.Average(), 6, 1e-12)
}

func TestRunningBlockAndReset(t *testing.T) {
	r, err := NewRunning(2)
	if err != nil {
		t.Fatal(err)
	}

	buf := []float64{2, 4, 6}
	r.ProcessBlock(buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{2, 3, 5}, 1e-12)

	r.Reset()
	if r.Count() != 0 || r.Average() != 0 {
		t.Fatal("reset did not clear state")
	}
	testutil.RequireNearlyEqual(t, "after reset", r.Process(10), 10, 0)
}

func TestNewRunningRejectsZeroWidth(t *testing.T) {
	if _, err := NewRunning(0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err=%v, want ErrInvalidParameter", err)
	}
}
