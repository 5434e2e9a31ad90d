package dqn

import (
	"errors"
	"fmt"
)

// Defaults shared by all DQN factories.
const (
	DefaultSeed              int64 = 123   // Seed for weight initialization
	DefaultListenerFrequency       = 10000 // Iterations between score reports
)

// Common errors.
var (
	ErrConvOnFlatInput = errors.New("cannot apply a convolutional layer on a rank-1 input shape")
	ErrInvalidInput    = errors.New("invalid network input")
	ErrInvalidConfig   = errors.New("invalid DQN configuration")
)

// Config holds the hyperparameters exposed by the convolutional factory.
type Config struct {
	LearningRate float64 `yaml:"learning_rate"`
	L2           float64 `yaml:"l2"`
	Seed         int64   `yaml:"seed"`
}

// DefaultConfig returns the settings used by the reference Atari setup.
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.00025,
		L2:           0,
		Seed:         DefaultSeed,
	}
}

// Validate checks that the hyperparameters are usable.
func (c Config) Validate() error {
	if !(c.LearningRate > 0) {
		return fmt.Errorf("%w: learning rate %v must be > 0", ErrInvalidConfig, c.LearningRate)
	}
	if !(c.L2 >= 0) {
		return fmt.Errorf("%w: l2 %v must be >= 0", ErrInvalidConfig, c.L2)
	}
	return nil
}
