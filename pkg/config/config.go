// Package config loads the optional skein.toml tuning file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/chazu/skein/pkg/graph"
	"github.com/chazu/skein/pkg/sim"
)

// Config holds everything tunable from a file. Every field has a
// working default, so no config file is required.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Physics PhysicsConfig `toml:"physics"`
}

// WindowConfig sets the logical surface size in pixels.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// PhysicsConfig mirrors sim.Config field for field so a loaded config
// converts straight into engine coefficients.
type PhysicsConfig struct {
	Repulsion float64 `toml:"repulsion"`
	Spring    float64 `toml:"spring"`
	Centering float64 `toml:"centering"`
	Damping   float64 `toml:"damping"`
}

// SimConfig converts the physics section into engine coefficients.
func (c Config) SimConfig() sim.Config {
	return sim.Config(c.Physics)
}

// Default returns the stock configuration: an 800×600 surface and the
// engine's default coefficients.
func Default() Config {
	return Config{
		Window:  WindowConfig{Width: graph.DefaultWidth, Height: graph.DefaultHeight},
		Physics: PhysicsConfig(sim.DefaultConfig()),
	}
}

// Load reads a TOML file over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.check(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) check() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Physics.Damping <= 0 || c.Physics.Damping >= 1 {
		return fmt.Errorf("damping %g must be in (0, 1)", c.Physics.Damping)
	}
	return nil
}
