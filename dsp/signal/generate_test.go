package signal

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-vitals/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(250))
	s, err := g.Sine(10, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	if g.SampleRate() != 250 {
		t.Fatalf("SampleRate() = %v, want 250", g.SampleRate())
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if n1[i] < -1 || n1[i] > 1 {
			t.Fatalf("noise[%d]=%v outside [-1, 1]", i, n1[i])
		}
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator()

	if _, err := g.Sine(1, 1, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Sine zero samples: %v", err)
	}
	if _, err := g.WhiteNoise(-1, 4); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("WhiteNoise negative amplitude: %v", err)
	}
}
