package core

import "fmt"

// ProcessorConfig defines common processing settings for a voice or module.
//
// BlockSize is the maximum number of samples rendered per call. Audio
// buffers are allocated once at this size and never grow.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the engine defaults: 44.1 kHz, 64-sample blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		BlockSize:  64,
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

// WithBlockSize sets the maximum block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
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

// Validate reports whether the configuration can drive a render loop.
func (c ProcessorConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("core: sample rate must be > 0: %f", c.SampleRate)
	}

	if c.BlockSize <= 0 {
		return fmt.Errorf("core: block size must be > 0: %d", c.BlockSize)
	}

	return nil
}

// BlockSeconds returns the duration of one full block.
func (c ProcessorConfig) BlockSeconds() float64 {
	if c.SampleRate <= 0 {
		return 0
	}

	return float64(c.BlockSize) / c.SampleRate
}
