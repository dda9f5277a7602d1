// Package config provides configuration loading for the lambda-sweep
// experiment tool.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all experiment parameters.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Sweep SweepConfig `yaml:"sweep"`
	Stats StatsConfig `yaml:"stats"`
}

// GridConfig describes the 1D grid every trial evolves.
type GridConfig struct {
	Width     int `yaml:"width"`
	Timesteps int `yaml:"timesteps"`
	// RandomizedCells restricts the random initialisation to a centered
	// block; 0 randomises the whole grid.
	RandomizedCells int `yaml:"randomized_cells"`
}

// SweepConfig describes the lambda range and the rule-table parameters.
type SweepConfig struct {
	K                int     `yaml:"k"`
	R                int     `yaml:"r"`
	LambdaMin        float64 `yaml:"lambda_min"`
	LambdaMax        float64 `yaml:"lambda_max"`
	LambdaStep       float64 `yaml:"lambda_step"`
	Trials           int     `yaml:"trials"`
	Seed             int64   `yaml:"seed"`
	StrongQuiescence bool    `yaml:"strong_quiescence"`
	Isotropic        bool    `yaml:"isotropic"`
}

// StatsConfig describes the complexity measures computed per trial.
type StatsConfig struct {
	TemporalDistance int `yaml:"temporal_distance"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the YAML file at path. An
// empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies the engine's parameter taxonomy before any work
// starts.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 {
		return fmt.Errorf("%w: grid width %d", core.ErrInvalidParameter, c.Grid.Width)
	}
	if c.Grid.Timesteps < 0 {
		return fmt.Errorf("%w: timesteps %d", core.ErrInvalidParameter, c.Grid.Timesteps)
	}
	if c.Grid.RandomizedCells < 0 || c.Grid.RandomizedCells > c.Grid.Width {
		return fmt.Errorf("%w: randomized_cells %d outside [0, %d]", core.ErrInvalidParameter, c.Grid.RandomizedCells, c.Grid.Width)
	}
	if c.Sweep.K < core.MinStates || c.Sweep.K > core.MaxStates {
		return fmt.Errorf("%w: k=%d outside [%d, %d]", core.ErrInvalidParameter, c.Sweep.K, core.MinStates, core.MaxStates)
	}
	if c.Sweep.R < 1 {
		return fmt.Errorf("%w: r=%d", core.ErrInvalidParameter, c.Sweep.R)
	}
	if c.Sweep.LambdaMin < 0 || c.Sweep.LambdaMax > 1 || c.Sweep.LambdaMin > c.Sweep.LambdaMax {
		return fmt.Errorf("%w: lambda range [%v, %v]", core.ErrInvalidParameter, c.Sweep.LambdaMin, c.Sweep.LambdaMax)
	}
	if c.Sweep.LambdaStep <= 0 && c.Sweep.LambdaMin != c.Sweep.LambdaMax {
		return fmt.Errorf("%w: lambda_step %v", core.ErrInvalidParameter, c.Sweep.LambdaStep)
	}
	if c.Sweep.Trials < 1 {
		return fmt.Errorf("%w: trials %d", core.ErrInvalidParameter, c.Sweep.Trials)
	}
	if c.Stats.TemporalDistance < 1 || c.Stats.TemporalDistance > c.Grid.Timesteps {
		return fmt.Errorf("%w: temporal_distance %d for %d timesteps", core.ErrInvalidParameter, c.Stats.TemporalDistance, c.Grid.Timesteps)
	}
	return nil
}

// Lambdas expands the configured range into the requested lambda
// values, endpoints included.
func (c *Config) Lambdas() []float64 {
	if c.Sweep.LambdaMin == c.Sweep.LambdaMax {
		return []float64{c.Sweep.LambdaMin}
	}
	var out []float64
	// Half a step of slack keeps the upper endpoint despite float drift.
	for v := c.Sweep.LambdaMin; v <= c.Sweep.LambdaMax+c.Sweep.LambdaStep/2; v += c.Sweep.LambdaStep {
		lambda := v
		if lambda > c.Sweep.LambdaMax {
			lambda = c.Sweep.LambdaMax
		}
		out = append(out, lambda)
	}
	return out
}
