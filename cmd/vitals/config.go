package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo parameters. Keys missing from a YAML file keep the
// defaults. Rates are in Hz, BPM or breaths per minute; durations in
// seconds.
type Config struct {
	SampleRate      float64     `yaml:"sample_rate"`
	Duration        float64     `yaml:"duration"`
	HeartRate       float64     `yaml:"heart_rate"`
	RespirationRate float64     `yaml:"respiration_rate"`
	Noise           NoiseConfig `yaml:"noise"`
	MainsFrequency  float64     `yaml:"mains_frequency"`
	LMS             LMSConfig   `yaml:"lms"`
	WindowSeconds   float64     `yaml:"window_seconds"`
	Seed            int64       `yaml:"seed"`
	LogLevel        string      `yaml:"log_level"`
}

// NoiseConfig holds Gaussian noise standard deviations per waveform.
type NoiseConfig struct {
	PPG         float64 `yaml:"ppg"`
	ECG         float64 `yaml:"ecg"`
	Respiration float64 `yaml:"respiration"`
}

// LMSConfig holds adaptive canceller settings.
type LMSConfig struct {
	Taps int     `yaml:"taps"`
	Step float64 `yaml:"step"`
}

// DefaultConfig returns the built-in demo parameters.
func DefaultConfig() Config {
	return Config{
		SampleRate:      500,
		Duration:        10,
		HeartRate:       72,
		RespirationRate: 15,
		Noise: NoiseConfig{
			PPG:         0.5,
			ECG:         0.15,
			Respiration: 0.2,
		},
		MainsFrequency: 50,
		LMS: LMSConfig{
			Taps: 32,
			Step: 0.01,
		},
		WindowSeconds: 1,
		Seed:          1,
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// WindowSamples returns the streaming window length in samples.
func (c Config) WindowSamples() int {
	return int(c.WindowSeconds * c.SampleRate)
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.SampleRate > 0, "sample_rate must be > 0: %g", c.SampleRate)
	check(c.Duration > 0, "duration must be > 0: %g", c.Duration)
	check(c.HeartRate > 0 && c.HeartRate <= 300, "heart_rate must be in (0, 300]: %g", c.HeartRate)
	check(c.RespirationRate > 0, "respiration_rate must be > 0: %g", c.RespirationRate)
	check(c.Noise.PPG >= 0 && c.Noise.ECG >= 0 && c.Noise.Respiration >= 0,
		"noise levels must be >= 0: %+v", c.Noise)
	check(c.MainsFrequency > 0 && c.MainsFrequency < c.SampleRate/2,
		"mains_frequency must be in (0, %g): %g", c.SampleRate/2, c.MainsFrequency)
	check(c.LMS.Taps >= 1, "lms.taps must be >= 1: %d", c.LMS.Taps)
	check(c.LMS.Step > 0, "lms.step must be > 0: %g", c.LMS.Step)
	check(c.WindowSeconds > 0 && c.WindowSamples() >= 1,
		"window_seconds must cover at least one sample: %g", c.WindowSeconds)
	check(c.WindowSeconds <= c.Duration, "window_seconds %g exceeds duration %g", c.WindowSeconds, c.Duration)

	return errors.Join(errs...)
}
