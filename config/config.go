// Package config loads the YAML configuration of an NV21 overlay pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/opd-ai/nv21kit/limits"
	"github.com/opd-ai/nv21kit/nv21"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Worker pool bounds.
const (
	MinWorkers = 1
	MaxWorkers = 64
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the full configuration of a frame pipeline.
type Config struct {
	Frame    FrameConfig     `yaml:"frame"`
	Rotation int             `yaml:"rotation"`
	Workers  int             `yaml:"workers"`
	LogLevel string          `yaml:"log_level"`
	Overlays []OverlayConfig `yaml:"overlays"`
}

// FrameConfig describes the frames flowing through the pipeline.
type FrameConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// OverlayConfig describes one raw NV21 overlay image and where it goes.
// Left and Top are display coordinates.
type OverlayConfig struct {
	Path        string `yaml:"path"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Left        int    `yaml:"left"`
	Top         int    `yaml:"top"`
	Transparent bool   `yaml:"transparent"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Frame: FrameConfig{
			Width:  640,
			Height: 480,
		},
		Workers:  4,
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of Defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := limits.ValidateFrameDimensions(c.Frame.Width, c.Frame.Height); err != nil {
		return fmt.Errorf("%w: frame: %w", ErrInvalidConfig, err)
	}
	if _, err := nv21.ParseRotation(c.Rotation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < MinWorkers || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers %d outside [%d, %d]", ErrInvalidConfig, c.Workers, MinWorkers, MaxWorkers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for i, o := range c.Overlays {
		if err := o.validate(); err != nil {
			return fmt.Errorf("%w: overlay %d: %w", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

func (o OverlayConfig) validate() error {
	if o.Path == "" {
		return errors.New("path is empty")
	}
	if err := limits.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.Width < 2 || o.Height < 2 {
		return fmt.Errorf("%w: %dx%d overlay is smaller than one chroma block", limits.ErrDimensionInvalid, o.Width, o.Height)
	}
	if o.Left < 0 || o.Top < 0 {
		return fmt.Errorf("%w: placement (%d,%d)", nv21.ErrOutOfBounds, o.Left, o.Top)
	}
	return nil
}

// DisplayRotation returns Rotation as an nv21.Rotation. Call Validate first.
func (c Config) DisplayRotation() nv21.Rotation {
	r, _ := nv21.ParseRotation(c.Rotation)
	return r
}

// ApplyEnv overrides fields from NV21_* environment variables. Values that
// fail to parse or are out of bounds are logged and ignored.
func (c *Config) ApplyEnv() {
	parseWorkersSetting(c)
	parseLogLevelSetting(c)
}

// parseWorkersSetting updates Workers from NV21_WORKERS.
func parseWorkersSetting(c *Config) {
	workersStr := os.Getenv("NV21_WORKERS")
	if workersStr == "" {
		return
	}
	workers, err := strconv.Atoi(workersStr)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":    "parseWorkersSetting",
			"env_var":     "NV21_WORKERS",
			"value":       workersStr,
			"error":       err.Error(),
			"using_value": c.Workers,
		}).Warn("Failed to parse NV21_WORKERS environment variable, using default")
		return
	}
	if workers < MinWorkers || workers > MaxWorkers {
		logrus.WithFields(logrus.Fields{
			"function":    "parseWorkersSetting",
			"env_var":     "NV21_WORKERS",
			"value":       workers,
			"min":         MinWorkers,
			"max":         MaxWorkers,
			"using_value": c.Workers,
		}).Warn("NV21_WORKERS value out of bounds, using default")
		return
	}
	c.Workers = workers
}

// parseLogLevelSetting updates LogLevel from NV21_LOG_LEVEL.
func parseLogLevelSetting(c *Config) {
	level := os.Getenv("NV21_LOG_LEVEL")
	if level == "" {
		return
	}
	if _, err := logrus.ParseLevel(level); err != nil {
		logrus.WithFields(logrus.Fields{
			"function":    "parseLogLevelSetting",
			"env_var":     "NV21_LOG_LEVEL",
			"value":       level,
			"error":       err.Error(),
			"using_value": c.LogLevel,
		}).Warn("Failed to parse NV21_LOG_LEVEL environment variable, using default")
		return
	}
	c.LogLevel = level
}
