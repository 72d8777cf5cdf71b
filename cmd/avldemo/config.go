package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"gopkg.in/yaml.v3"
)

type RangeConfig struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

type DemoConfig struct {
	Values []int       `yaml:"values"`
	Range  RangeConfig `yaml:"range"`
	Remove []int       `yaml:"remove"`
}

type StressConfig struct {
	Ops        int   `yaml:"ops"`
	Seed       int64 `yaml:"seed"`
	ValueRange int   `yaml:"value_range"`
}

type LoggingConfig struct {
	Directory string `yaml:"directory"`
	File      string `yaml:"file"`
	Size      int    `yaml:"size"`
	Count     int    `yaml:"count"`
	Console   bool   `yaml:"console"`
	Level     string `yaml:"level"`
}

type Config struct {
	Demo    DemoConfig    `yaml:"demo"`
	Stress  StressConfig  `yaml:"stress"`
	Logging LoggingConfig `yaml:"logging"`
}

func defaultConfig() Config {
	return Config{
		Demo: DemoConfig{
			Values: []int{10, 20, 30, 40, 50, 25},
			Range:  RangeConfig{Low: 20, High: 40},
			Remove: []int{30},
		},
		Stress: StressConfig{
			Ops:        10000,
			Seed:       0,
			ValueRange: 1000,
		},
		Logging: LoggingConfig{
			Directory: filepath.Join(os.TempDir(), "avldemo"),
			File:      "avldemo.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Level:     "info",
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path or
// a missing file gives the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return &config, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

func (c *Config) validate() error {
	if err := c.Stress.validate(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "critical":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

func (c StressConfig) validate() error {
	if c.Ops < 0 {
		return fmt.Errorf("stress ops must not be negative, got %d", c.Ops)
	}
	if c.ValueRange <= 0 {
		return fmt.Errorf("stress value_range must be positive, got %d", c.ValueRange)
	}
	return nil
}

// startLogging initialises the logger, creating the log directory, and
// returns logger.Finalise.
func startLogging(c LoggingConfig) (func(), error) {
	if err := os.MkdirAll(c.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	err := logger.Initialise(logger.Configuration{
		Directory: c.Directory,
		File:      c.File,
		Size:      c.Size,
		Count:     c.Count,
		Console:   c.Console,
		Levels: map[string]string{
			logger.DefaultTag: c.Level,
		},
	})
	if err != nil {
		return nil, err
	}
	return logger.Finalise, nil
}
