// Package config loads ndshape settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndshape/internal/dqn"
	"github.com/born-ml/ndshape/internal/shapeinfo"
	"github.com/born-ml/ndshape/internal/tensor"
)

// Environment variables that override file settings.
const (
	EnvOrder    = "NDSHAPE_ORDER"
	EnvLogLevel = "NDSHAPE_LOG_LEVEL"
)

// Config is the root configuration.
type Config struct {
	Shape   ShapeConfig   `yaml:"shape"`
	DQN     dqn.Config    `yaml:"dqn"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShapeConfig configures descriptor encoding.
type ShapeConfig struct {
	// DefaultOrder applies to layouts that do not name an order ("c" or "f").
	DefaultOrder tensor.Order `yaml:"default_order"`

	// MaxRank is the largest accepted rank.
	MaxRank int `yaml:"max_rank"`

	// CacheEnabled shares descriptors between equal layouts.
	CacheEnabled bool `yaml:"cache_enabled"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Shape: ShapeConfig{
			DefaultOrder: tensor.RowMajor,
			MaxRank:      shapeinfo.DefaultMaxRank,
			CacheEnabled: true,
		},
		DQN: dqn.DefaultConfig(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	//nolint:gosec // G304: config path is supplied by the user
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	//nolint:gosec // G306: config files are not secret
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if !c.Shape.DefaultOrder.Valid() {
		return fmt.Errorf("shape.default_order: invalid order %v", c.Shape.DefaultOrder)
	}
	if c.Shape.MaxRank <= 0 {
		return fmt.Errorf("shape.max_rank: %d must be > 0", c.Shape.MaxRank)
	}
	if err := c.DQN.Validate(); err != nil {
		return fmt.Errorf("dqn: %w", err)
	}
	return nil
}

// EncoderConfig converts the shape settings into a shapeinfo.Config.
func (c *Config) EncoderConfig() shapeinfo.Config {
	return shapeinfo.Config{
		DefaultOrder: c.Shape.DefaultOrder,
		MaxRank:      c.Shape.MaxRank,
	}
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvOrder); v != "" {
		order, err := tensor.ParseOrder(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOrder, err)
		}
		c.Shape.DefaultOrder = order
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}
