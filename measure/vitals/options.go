package vitals

import "github.com/cwbudde/algo-vitals/dsp/spectrum"

// Default search bands in Hz: 40-200 BPM and 8-30 breaths per minute.
const (
	DefaultHeartLow        = 0.67
	DefaultHeartHigh       = 3.33
	DefaultRespirationLow  = 0.13
	DefaultRespirationHigh = 0.5
)

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	heartLow, heartHigh float64
	respLow, respHigh   float64
	segment             int
	mains               float64
}

func defaultConfig() config {
	return config{
		heartLow:  DefaultHeartLow,
		heartHigh: DefaultHeartHigh,
		respLow:   DefaultRespirationLow,
		respHigh:  DefaultRespirationHigh,
		segment:   spectrum.DefaultSegmentLength,
	}
}

// WithHeartBand sets the heart rate search band in Hz.
// Bands with low < 0 or low > high are ignored.
func WithHeartBand(low, high float64) Option {
	return func(cfg *config) {
		if low >= 0 && low <= high {
			cfg.heartLow, cfg.heartHigh = low, high
		}
	}
}

// WithRespirationBand sets the respiration rate search band in Hz.
// Bands with low < 0 or low > high are ignored.
func WithRespirationBand(low, high float64) Option {
	return func(cfg *config) {
		if low >= 0 && low <= high {
			cfg.respLow, cfg.respHigh = low, high
		}
	}
}

// WithSegmentLength sets the Welch segment length for quality metrics.
func WithSegmentLength(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.segment = n
		}
	}
}

// WithMainsFrequency enables the mains pickup measurement in
// [Analyzer.Quality] at the given frequency, typically 50 or 60 Hz.
// Non-positive values disable it.
func WithMainsFrequency(hz float64) Option {
	return func(cfg *config) {
		cfg.mains = max(hz, 0)
	}
}
