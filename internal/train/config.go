package train

import (
	"errors"
	"fmt"

	"github.com/born-ml/micrograd/internal/nn"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid training config")

// Config describes a binary-classification training run on the moons dataset.
type Config struct {
	Samples    int           // Training samples (default: 200)
	TestSize   int           // Held-out samples drawn with TestSeed; 0 skips evaluation
	Noise      float64       // Radial noise of the training set
	TestNoise  float64       // Radial noise of the test set
	Seed       int64         // Seed for data and weights
	TestSeed   int64         // Seed for the test set
	Epochs     int           // Full-batch steps (default: 100)
	Hidden     []int         // Hidden layer widths (default: [16, 16])
	Activation nn.Activation // Neuron activation (default: tanh)
	LRStart    float64       // Learning rate at epoch 0 (default: 1.0)
	LREnd      float64       // Rate the schedule decays toward, reached at step Epochs (default: 0.1)
	Momentum   float64       // SGD momentum
	Trace      bool          // Log every backward node at debug level
}

// DefaultConfig returns the configuration of the reference moons run:
// 150 held-out samples, noise 0.1 (0.5 held-out), seeds 42 and 142.
func DefaultConfig() Config {
	return Config{
		Samples:    200,
		TestSize:   150,
		Noise:      0.1,
		TestNoise:  0.5,
		Seed:       42,
		TestSeed:   142,
		Epochs:     100,
		Hidden:     []int{16, 16},
		Activation: nn.Tanh,
		LRStart:    1.0,
		LREnd:      0.1,
	}
}

// withDefaults fills the zero fields that have no valid zero value.
// Seeds, noise, TestSize and Momentum are used as given, zero included.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Samples == 0 {
		c.Samples = d.Samples
	}
	if c.Epochs == 0 {
		c.Epochs = d.Epochs
	}
	if len(c.Hidden) == 0 {
		c.Hidden = d.Hidden
	}
	if c.LRStart == 0 {
		c.LRStart = d.LRStart
	}
	if c.LREnd == 0 {
		c.LREnd = d.LREnd
	}
	return c
}

// Validate reports configuration errors wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Samples < 2:
		return fmt.Errorf("%w: samples must be at least 2, got %d", ErrInvalidConfig, c.Samples)
	case c.TestSize < 0:
		return fmt.Errorf("%w: test size must be non-negative, got %d", ErrInvalidConfig, c.TestSize)
	case c.Noise < 0 || c.TestNoise < 0:
		return fmt.Errorf("%w: noise must be non-negative", ErrInvalidConfig)
	case c.Epochs < 1:
		return fmt.Errorf("%w: epochs must be at least 1, got %d", ErrInvalidConfig, c.Epochs)
	case c.LRStart <= 0 || c.LREnd <= 0:
		return fmt.Errorf("%w: learning rates must be positive", ErrInvalidConfig)
	case c.Momentum < 0 || c.Momentum >= 1:
		return fmt.Errorf("%w: momentum must be in [0, 1), got %v", ErrInvalidConfig, c.Momentum)
	}
	for i, h := range c.Hidden {
		if h < 1 {
			return fmt.Errorf("%w: hidden layer %d has width %d", ErrInvalidConfig, i, h)
		}
	}
	switch c.Activation {
	case nn.Tanh, nn.ReLU, nn.Linear:
	default:
		return fmt.Errorf("%w: unknown activation %v", ErrInvalidConfig, c.Activation)
	}
	return nil
}
