package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/skein/pkg/sim"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("default window %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.SimConfig() != sim.DefaultConfig() {
		t.Errorf("default physics %+v does not match the engine defaults", cfg.Physics)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skein.toml")
	body := `
[window]
width = 1024
height = 768

[physics]
damping = 0.85
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window = %dx%d, want 1024x768", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Physics.Damping != 0.85 {
		t.Errorf("damping = %g, want 0.85", cfg.Physics.Damping)
	}
	// untouched sections keep their defaults
	if cfg.Physics.Repulsion != sim.DefaultConfig().Repulsion {
		t.Errorf("repulsion = %g, want default %g", cfg.Physics.Repulsion, sim.DefaultConfig().Repulsion)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "[window]\nwidth = 0\n"},
		{"damping too high", "[physics]\ndamping = 1.5\n"},
		{"damping zero", "[physics]\ndamping = 0.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "skein.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing config file should error")
	}
}
