package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func testCoeffs() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSampleDFIIT(t *testing.T) {
	// n=0: y=0.25, d0=0.55, d1=0.24
	// n=1: y=0.55, d0=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.048
	s := NewSection(testCoeffs())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Fatalf("n=%d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlockMatchesProcessSample(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 64} {
		input := make([]float64, n)
		for i := range input {
			input[i] = math.Sin(0.37*float64(i)) + 0.1*float64(i%3)
		}

		ref := NewSection(testCoeffs())
		want := make([]float64, n)
		for i, x := range input {
			want[i] = ref.ProcessSample(x)
		}

		blk := NewSection(testCoeffs())
		got := append([]float64(nil), input...)
		blk.ProcessBlock(got)

		to := NewSection(testCoeffs())
		dst := make([]float64, n)
		to.ProcessBlockTo(dst, input)

		for i := range want {
			if !almostEqual(got[i], want[i], eps) || !almostEqual(dst[i], want[i], eps) {
				t.Fatalf("n=%d i=%d: block=%v to=%v want=%v", n, i, got[i], dst[i], want[i])
			}
		}
		if blk.State() != ref.State() {
			t.Fatalf("n=%d: state mismatch %v vs %v", n, blk.State(), ref.State())
		}
	}
}

func TestResetAndSetState(t *testing.T) {
	s := NewSection(testCoeffs())
	s.ProcessSample(1)
	saved := s.State()
	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("reset did not clear state: %v", s.State())
	}
	s.SetState(saved)
	if s.State() != saved {
		t.Fatalf("SetState: got %v, want %v", s.State(), saved)
	}
}

func TestDCGain(t *testing.T) {
	c := testCoeffs()
	want := 1.0 / (1 - 0.2 + 0.04)
	if got := c.DCGain(); !almostEqual(got, want, eps) {
		t.Fatalf("DCGain=%v, want %v", got, want)
	}

	integrator := Coefficients{B0: 1, A1: -1}
	if got := integrator.DCGain(); got != 0 {
		t.Fatalf("pole at z=1: DCGain=%v, want 0", got)
	}
}

func TestPrimeHoldsConstantInput(t *testing.T) {
	const x0 = 3.5

	s := NewSection(testCoeffs())
	s.Prime(x0)

	want := x0 * s.DCGain()
	for i := range 20 {
		if y := s.ProcessSample(x0); !almostEqual(y, want, 1e-12) {
			t.Fatalf("sample %d: got %v, want steady %v", i, y, want)
		}
	}
}

func TestPolesAndStability(t *testing.T) {
	c := testCoeffs()
	for _, p := range c.Poles() {
		if !almostEqual(real(p), 0.1, 1e-12) {
			t.Fatalf("unexpected pole %v", p)
		}
	}
	if !c.Stable() {
		t.Fatal("expected stable section")
	}

	zeros := c.Zeros()
	for _, z := range zeros {
		if !almostEqual(real(z), -1, 1e-6) {
			t.Fatalf("unexpected zero %v", z)
		}
	}

	unstable := Coefficients{B0: 1, A1: 0, A2: -1.21}
	if unstable.Stable() {
		t.Fatal("expected unstable section")
	}
}
