package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.WindowSamples() != 500 {
		t.Fatalf("WindowSamples() = %d, want 500", cfg.WindowSamples())
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitals.yaml")
	data := []byte(`
sample_rate: 250
heart_rate: 90
noise:
  ecg: 0.3
lms:
  taps: 16
seed: 42
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.SampleRate != 250 || cfg.HeartRate != 90 || cfg.Seed != 42 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Noise.ECG != 0.3 || cfg.Noise.PPG != 0.5 {
		t.Fatalf("noise = %+v, want ecg override and ppg default", cfg.Noise)
	}
	if cfg.LMS.Taps != 16 || cfg.LMS.Step != 0.01 {
		t.Fatalf("lms = %+v, want taps override and step default", cfg.LMS)
	}
	if cfg.Duration != 10 || cfg.MainsFrequency != 50 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sample_rate: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed YAML should fail")
	}

	cfg, err := LoadConfig("")
	if err != nil || cfg != DefaultConfig() {
		t.Fatalf("empty path: %+v, %v", cfg, err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 80
	cfg.HeartRate = 0
	cfg.LMS.Step = -1
	cfg.WindowSeconds = 20

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	for _, field := range []string{"heart_rate", "mains_frequency", "lms.step", "window_seconds"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("error %q does not mention %s", err, field)
		}
	}
}
