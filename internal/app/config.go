// Package app hosts the viewer shell: command-line configuration plus
// the windowed game loop built when the ebiten tag is set.
package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Opts  string
	Scale int
	TPS   int
	Seed  int64
	Steps int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "elementary", Scale: 3, TPS: 60, Seed: 42, Steps: 256}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Opts, "opts", c.Opts, "sim options as comma-separated key=value pairs")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Steps, "steps", c.Steps, "timesteps for the console viewer")
}

// SimOpts parses the -opts string into the map sim factories consume.
func (c *Config) SimOpts() map[string]string {
	if c.Opts == "" {
		return nil
	}
	opts := make(map[string]string)
	for _, pair := range strings.Split(c.Opts, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}
		opts[key] = value
	}
	return opts
}
