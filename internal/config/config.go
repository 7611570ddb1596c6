// Package config handles objtool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/objmesh/pkg/encoding"
	"github.com/Faultbox/objmesh/pkg/wavefront"
)

// Config holds all settings.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Loader  LoaderConfig  `yaml:"loader"`
	Logging LoggingConfig `yaml:"logging"`
}

// AssetsConfig holds asset file locations and decoding.
type AssetsConfig struct {
	ModelsRoot   string `yaml:"models_root"`   // prefix for mtllib names
	TexturesRoot string `yaml:"textures_root"` // prefix for map_Kd names
	Encoding     string `yaml:"encoding"`      // source text encoding, empty for UTF-8
	Cache        bool   `yaml:"cache"`         // keep loaded source text in memory
}

// LoaderConfig holds parsing settings.
type LoaderConfig struct {
	Strategy string `yaml:"strategy"` // "counted" or "growable"
	Workers  int    `yaml:"workers"`  // parallel loads in LoadAll
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			ModelsRoot:   "models/",
			TexturesRoot: "textures/",
			Encoding:     "",
			Cache:        true,
		},
		Loader: LoaderConfig{
			Strategy: wavefront.StrategyCounted.String(),
			Workers:  4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that cannot be caught by YAML decoding.
func (c *Config) Validate() error {
	if _, err := wavefront.ParseStrategy(c.Loader.Strategy); err != nil {
		return fmt.Errorf("loader.strategy: %w", err)
	}
	if c.Loader.Workers < 1 {
		return fmt.Errorf("loader.workers must be at least 1, got %d", c.Loader.Workers)
	}
	if err := encoding.Validate(c.Assets.Encoding); err != nil {
		return fmt.Errorf("assets.encoding: %w", err)
	}
	return nil
}
