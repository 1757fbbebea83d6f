package life_test

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/go-theft-auto/life"
)

func TestConfigDefaultsValid(t *testing.T) {
	if err := life.NewConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := life.NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-width", "64", "-height", "48",
		"-step", "50ms",
		"-preset", "glider",
		"-seed", "5",
		"-paused",
		"-fg", "#ff0000",
		"-bg", "navy",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Step != 50*time.Millisecond {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Paused || cfg.Seed != 5 || cfg.Preset != "glider" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Palette.Live != (life.Color{R: 1}) {
		t.Errorf("fg = %+v", cfg.Palette.Live)
	}
	if c := cfg.Palette.Background.RGBA8(); c.R != 0 || c.G != 0 || c.B != 0x80 {
		t.Errorf("bg = %+v", c)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	sim := cfg.NewSimulation()
	if !sim.Paused() || sim.Grid().Width() != 64 || sim.Grid().Population() != len(life.PresetGlider.Cells) {
		t.Error("simulation does not follow the config")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*life.Config)
	}{
		{"no interior", func(c *life.Config) { c.Width = 2 }},
		{"gun does not fit", func(c *life.Config) { c.Width, c.Height = 30, 30 }},
		{"unknown preset", func(c *life.Config) { c.Preset = "spaceship" }},
		{"step too fast", func(c *life.Config) { c.Step = time.Millisecond }},
		{"step too slow", func(c *life.Config) { c.Step = 2 * time.Second }},
		{"distribution", func(c *life.Config) { c.Random.Distribution = 0 }},
		{"concentration", func(c *life.Config) { c.Random.Concentration = 101 }},
		{"radius", func(c *life.Config) { c.Random.Radius = 51 }},
		{"generations", func(c *life.Config) { c.Headless, c.Generations = true, -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := life.NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, life.ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want [3]uint8
	}{
		{"#00ff80", [3]uint8{0, 0xff, 0x80}},
		{"00FF80", [3]uint8{0, 0xff, 0x80}},
		{"white", [3]uint8{0xff, 0xff, 0xff}},
		{" Gold ", [3]uint8{0xff, 0xd7, 0x00}},
	}
	for _, tt := range tests {
		c, err := life.ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		got := c.RGBA8()
		if [3]uint8{got.R, got.G, got.B} != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12345", "#gggggg", "not-a-color"} {
		if _, err := life.ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}
