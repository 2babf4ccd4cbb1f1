package core

// ProcessorConfig defines common settings for sample producers.
type ProcessorConfig struct {
	SampleRate float64
	// LSB is the quantization step applied to produced samples; 0 disables it.
	LSB float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the settings of the reference recordings.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 10000,
	}
}

// WithSampleRate sets the sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithLSB sets the quantization step.
func WithLSB(lsb float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if lsb >= 0 {
			cfg.LSB = lsb
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
