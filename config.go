package life

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("life: invalid config")

// Config represents the command-line parameters of a Life session.
type Config struct {
	Width, Height int
	Step          time.Duration
	Random        RandomParams
	Seed          int64
	Preset        string
	Paused        bool

	WindowWidth, WindowHeight int
	VSync                     bool
	Verbose                   bool

	Headless    bool
	Generations int
	Out         string

	Palette Palette
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Width:        DefaultGridWidth,
		Height:       DefaultGridHeight,
		Step:         DefaultStepInterval,
		Random:       DefaultRandomParams,
		Seed:         time.Now().UnixNano(),
		Preset:       PresetRPentomino.Name,
		WindowWidth:  1280,
		WindowHeight: 800,
		VSync:        true,
		Generations:  100,
		Out:          "life.png",
		Palette:      DefaultPalette(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.Step, "step", c.Step, "time between generations (10ms..1s)")
	fs.IntVar(&c.Random.Distribution, "distribution", c.Random.Distribution, "randomize: seed a cell alive with odds 1 in N")
	fs.IntVar(&c.Random.Concentration, "concentration", c.Random.Concentration, "randomize: percent odds around each seed")
	fs.IntVar(&c.Random.Radius, "radius", c.Random.Radius, "randomize: radius re-rolled around each seed")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.Preset, "preset", c.Preset, "pattern loaded at start and on reset")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "initial window width")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "initial window height")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "wait for vertical sync")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window and write a PNG snapshot")
	fs.IntVar(&c.Generations, "generations", c.Generations, "headless: generations to simulate")
	fs.StringVar(&c.Out, "out", c.Out, "snapshot output file")
	fs.Var((*colorValue)(&c.Palette.Live), "fg", "live cell color (#rrggbb or name)")
	fs.Var((*colorValue)(&c.Palette.Dead), "dead", "dead cell color (#rrggbb or name)")
	fs.Var((*colorValue)(&c.Palette.Background), "bg", "background color (#rrggbb or name)")
	fs.Var((*colorValue)(&c.Palette.Marker), "marker", "border marker color (#rrggbb or name)")
}

// Validate checks the configuration invariants the core relies on: every
// preset must fit inside the grid interior and the step and randomizer
// settings must be in range.
func (c *Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: grid %dx%d has no interior", ErrInvalidConfig, c.Width, c.Height)
	}
	for _, p := range Presets {
		if !p.FitsInterior(c.Width, c.Height) {
			return fmt.Errorf("%w: grid %dx%d too small for preset %q", ErrInvalidConfig, c.Width, c.Height, p.Name)
		}
	}
	if _, err := PresetByName(c.Preset); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Step < MinStepInterval || c.Step > MaxStepInterval {
		return fmt.Errorf("%w: step %v outside [%v, %v]", ErrInvalidConfig, c.Step, MinStepInterval, MaxStepInterval)
	}
	r := c.Random
	if r.Distribution < MinDistribution || r.Distribution > MaxDistribution {
		return fmt.Errorf("%w: distribution %d outside [%d, %d]", ErrInvalidConfig, r.Distribution, MinDistribution, MaxDistribution)
	}
	if r.Concentration < MinConcentration || r.Concentration > MaxConcentration {
		return fmt.Errorf("%w: concentration %d outside [%d, %d]", ErrInvalidConfig, r.Concentration, MinConcentration, MaxConcentration)
	}
	if r.Radius < MinRadius || r.Radius > MaxRadius {
		return fmt.Errorf("%w: radius %d outside [%d, %d]", ErrInvalidConfig, r.Radius, MinRadius, MaxRadius)
	}
	if c.Headless && c.Generations < 0 {
		return fmt.Errorf("%w: negative generations", ErrInvalidConfig)
	}
	return nil
}

// NewSimulation builds the simulation described by the configuration.
// Validate must have succeeded.
func (c *Config) NewSimulation() *Simulation {
	start, _ := PresetByName(c.Preset)
	return NewSimulation(c.Width, c.Height,
		WithStepInterval(c.Step),
		WithRandomParams(c.Random),
		WithSeed(c.Seed),
		WithStartPreset(start),
		WithPaused(c.Paused),
	)
}

// ParseColor parses "#rrggbb", "rrggbb" or a CSS color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if rgba, ok := colornames.Map[s]; ok {
		return colorFromRGBA(rgba), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return colorFromRGBA(color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}), nil
}

func colorFromRGBA(c color.RGBA) Color {
	return Color{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255}
}

// RGBA8 converts the color to an 8-bit opaque color.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(clampf(c.R, 0, 1)*255 + 0.5),
		G: uint8(clampf(c.G, 0, 1)*255 + 0.5),
		B: uint8(clampf(c.B, 0, 1)*255 + 0.5),
		A: 0xff,
	}
}

// colorValue adapts a Color to flag.Value.
type colorValue Color

func (v *colorValue) String() string {
	if v == nil {
		return ""
	}
	c := Color(*v).RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (v *colorValue) Set(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	*v = colorValue(c)
	return nil
}
