package core

// ProcessorConfig defines common processing settings.
type ProcessorConfig struct {
	SampleRate float64
	// WindowSize is the number of samples a caller accumulates before
	// invoking the batch algorithms.
	WindowSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults for biosignal acquisition:
// 500 Hz sampling and a one-second window.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 500,
		WindowSize: 500,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindowSize sets the processing window size.
func WithWindowSize(windowSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if windowSize > 0 {
			cfg.WindowSize = windowSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
