// SPDX-License-Identifier: MIT

// Package config loads stochrank run settings from YAML.
//
// Config file locations (priority order):
//  1. the path given on the command line (-config)
//  2. $STOCHRANK_CONFIG
//  3. ./stochrank.yaml
//
// Missing keys keep their defaults; command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stochrank/markov"
	"github.com/katalvlaran/stochrank/pagerank"
	"github.com/katalvlaran/stochrank/ranking"
	"github.com/katalvlaran/stochrank/sampler"
	"github.com/katalvlaran/stochrank/transition"
)

// EnvConfigPath names the environment variable consulted by FindConfigPath.
const EnvConfigPath = "STOCHRANK_CONFIG"

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "stochrank.yaml"

// DefaultNodes matches the reference workload size.
const DefaultNodes = 5000

// Config is the root of the configuration file.
type Config struct {
	Rank    RankConfig    `yaml:"rank"`
	Markov  MarkovConfig  `yaml:"markov"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RankConfig drives the `rank` command.
type RankConfig struct {
	Nodes         int     `yaml:"nodes" validate:"min=1"`
	Damping       float64 `yaml:"damping" validate:"gte=0,lte=1"`
	Threshold     float64 `yaml:"threshold" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"min=1"`
	Seed          uint64  `yaml:"seed"`
	Strategy      string  `yaml:"strategy" validate:"oneof=uniform exponential dirichlet"`
	Workers       int     `yaml:"workers" validate:"min=1"`
	Top           int     `yaml:"top" validate:"min=0"`
	Precision     int     `yaml:"precision" validate:"min=0,max=64"`
}

// MarkovConfig drives the `words` and `chars` commands.
type MarkovConfig struct {
	Order      int    `yaml:"order" validate:"min=1"`
	WordLength int    `yaml:"word_length" validate:"min=1"`
	CharLength int    `yaml:"char_length" validate:"min=1"`
	Samples    int    `yaml:"samples" validate:"min=1"`
	Seed       uint64 `yaml:"seed"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// MetricsConfig controls the Prometheus textfile dump.
type MetricsConfig struct {
	// TextfilePath, when set, receives the solver metrics after each run.
	TextfilePath string `yaml:"textfile_path"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultConfig returns the settings used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Rank: RankConfig{
			Nodes:         DefaultNodes,
			Damping:       transition.DefaultDamping,
			Threshold:     pagerank.DefaultThreshold,
			MaxIterations: pagerank.DefaultMaxIterations,
			Strategy:      sampler.DefaultStrategy.String(),
			Workers:       1,
			Top:           ranking.DefaultTop,
			Precision:     ranking.DefaultPrecision,
		},
		Markov: MarkovConfig{
			Order:      markov.DefaultOrder,
			WordLength: 30,
			CharLength: 100,
			Samples:    3,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// FindConfigPath returns the first existing config file, or "" if none.
func FindConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	return ""
}

// Load reads path, or the discovered config file when path is empty, and
// returns defaults when nothing is found. The returned string is the file
// actually read ("" for pure defaults).
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads and validates config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Parse decodes YAML over the defaults, fills blanks and validates.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills in values an explicit empty key would otherwise blank out.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Rank.Strategy == "" {
		c.Rank.Strategy = d.Rank.Strategy
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// StrategyValue parses Rank.Strategy.
func (c *Config) StrategyValue() (sampler.Strategy, error) {
	return sampler.ParseStrategy(c.Rank.Strategy)
}
