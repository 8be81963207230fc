package core

import (
	"errors"
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestValidateSampleRate(t *testing.T) {
	for _, fs := range []float64{0, -500, math.NaN(), math.Inf(1)} {
		if err := ValidateSampleRate(fs); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("ValidateSampleRate(%v) = %v, want ErrInvalidParameter", fs, err)
		}
	}
	if err := ValidateSampleRate(500); err != nil {
		t.Fatalf("ValidateSampleRate(500) = %v", err)
	}
}

func TestValidateFrequency(t *testing.T) {
	tests := []struct {
		freq float64
		ok   bool
	}{
		{freq: 10, ok: true},
		{freq: 249.9, ok: true},
		{freq: 250, ok: false},
		{freq: 300, ok: false},
		{freq: 0, ok: false},
		{freq: -1, ok: false},
		{freq: math.NaN(), ok: false},
	}

	for _, tt := range tests {
		err := ValidateFrequency("cutoff", tt.freq, 500)
		if tt.ok && err != nil {
			t.Fatalf("freq=%v: unexpected error %v", tt.freq, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("freq=%v: got %v, want ErrInvalidParameter", tt.freq, err)
		}
	}
}

func TestValidateBand(t *testing.T) {
	if err := ValidateBand("bandpass", 0.5, 40, 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateBand("bandpass", 40, 0.5, 500); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("reversed band: got %v, want ErrInvalidParameter", err)
	}
	if err := ValidateBand("bandpass", 0.5, 260, 500); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("band above Nyquist: got %v, want ErrInvalidParameter", err)
	}
}

func TestOddExtend(t *testing.T) {
	x := []float64{1, 2, 4, 7}
	got := OddExtend(x, 2)
	want := []float64{-2, 0, 1, 2, 4, 7, 10, 12}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReverseAndClone(t *testing.T) {
	x := []float64{1, 2, 3}
	c := Clone(x)
	Reverse(c)
	if c[0] != 3 || c[2] != 1 || x[0] != 1 {
		t.Fatalf("Reverse/Clone mismatch: x=%v c=%v", x, c)
	}
	if got := Clone(nil); got == nil || len(got) != 0 {
		t.Fatalf("Clone(nil) = %v, want empty non-nil", got)
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 2, 8)
	if got := EnsureLen(buf, 6); len(got) != 6 || cap(got) != 8 {
		t.Fatalf("EnsureLen reuse: len=%d cap=%d", len(got), cap(got))
	}
	if got := EnsureLen(buf, 16); len(got) != 16 {
		t.Fatalf("EnsureLen grow: len=%d", len(got))
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(-1), WithWindowSize(0), nil)
	if cfg != DefaultProcessorConfig() {
		t.Fatalf("invalid options must be ignored: %+v", cfg)
	}
	cfg = ApplyProcessorOptions(WithSampleRate(250), WithWindowSize(1000))
	if cfg.SampleRate != 250 || cfg.WindowSize != 1000 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
