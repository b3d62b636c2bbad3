// Package config loads testmodule settings from YAML and the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/feather-lang/testmodule"
	"github.com/feather-lang/testmodule/internal/log"
)

// Environment variables read by Load.
const (
	EnvConfig   = "TESTMODULE_CONFIG"
	EnvLogLevel = "TESTMODULE_LOG_LEVEL"
	EnvLogDev   = "TESTMODULE_LOG_DEV"
)

// Config is the root of the configuration file.
type Config struct {
	Log  Log  `yaml:"log"`
	Demo Demo `yaml:"demo"`
}

// Log configures internal/log.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Demo holds the values the CLI demo runs through the library.
type Demo struct {
	Int     int64       `yaml:"int"`
	String  string      `yaml:"string"`
	Variant string      `yaml:"variant"`
	Grid    [][]float64 `yaml:"grid"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: Log{Level: "warn"},
		Demo: Demo{
			Int:     1234,
			String:  "1234",
			Variant: testmodule.VariantReverse.String(),
			Grid:    [][]float64{{1, 2}, {3, 4}},
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path falls back to $TESTMODULE_CONFIG, and then to defaults only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogDev); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvLogDev, v, err)
		}
		c.Log.Development = dev
	}
	return nil
}

// Validate checks the log level and the demo values.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Demo.Int < math.MinInt32 || c.Demo.Int > math.MaxInt32 {
		return fmt.Errorf("demo.int %d out of int32 range: %w", c.Demo.Int, testmodule.ErrInvalidArgument)
	}
	if _, err := testmodule.ParseVariant(c.Demo.Variant); err != nil {
		return fmt.Errorf("demo.variant: %w", err)
	}
	if _, err := testmodule.GridFromRows(c.Demo.Grid); err != nil {
		return fmt.Errorf("demo.grid: %w", err)
	}
	return nil
}

// ParsedVariant returns the demo variant, defaulting to reverse.
func (d Demo) ParsedVariant() testmodule.Variant {
	v, err := testmodule.ParseVariant(d.Variant)
	if err != nil {
		return testmodule.VariantReverse
	}
	return v
}

// ReadGrid loads a grid file: a YAML sequence of rows.
func ReadGrid(path string) (*testmodule.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	var rows [][]float64
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing grid %s: %w", path, err)
	}
	return testmodule.GridFromRows(rows)
}
