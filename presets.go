package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a preset name does not match any pattern.
var ErrUnknownPreset = errors.New("life: unknown preset")

// Preset is a named pattern given as offsets from the grid center.
type Preset struct {
	Name  string
	Cells []Point
}

// Bounds returns the smallest and largest offsets of the preset.
func (p Preset) Bounds() (lo, hi Point) {
	if len(p.Cells) == 0 {
		return Point{}, Point{}
	}
	lo, hi = p.Cells[0], p.Cells[0]
	for _, c := range p.Cells[1:] {
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi
}

// FitsInterior reports whether the preset, placed at the center of a w×h
// grid, stays clear of the border ring.
func (p Preset) FitsInterior(w, h int) bool {
	lo, hi := p.Bounds()
	cx, cy := w/2, h/2
	return cx+lo.X >= 1 && cy+lo.Y >= 1 && cx+hi.X <= w-2 && cy+hi.Y <= h-2
}

var (
	PresetBeacon = Preset{
		Name:  "Beacon",
		Cells: []Point{{0, 0}, {1, 0}, {0, -1}, {3, -2}, {3, -3}, {2, -3}},
	}
	PresetGlider = Preset{
		Name:  "Glider",
		Cells: []Point{{0, 0}, {1, 0}, {2, 0}, {1, 2}, {2, 1}},
	}
	PresetGosperGun = Preset{
		Name: "Gosper glider gun",
		Cells: []Point{
			{-1, -1}, {-2, 0}, {-2, -1}, {-2, -2}, {-3, 1}, {-3, -3},
			{-4, -1}, {-5, 2}, {-5, -4}, {-6, 2}, {-6, -4}, {-7, 1},
			{-7, -3}, {-8, 0}, {-8, -1}, {-8, -2}, {-17, 0}, {-17, -1},
			{-18, 0}, {-18, -1}, {2, 0}, {2, 1}, {2, 2}, {3, 0},
			{3, 1}, {3, 2}, {4, -1}, {4, 3}, {6, 3}, {6, 4},
			{6, -1}, {6, -2}, {16, 1}, {16, 2}, {17, 1}, {17, 2},
		},
	}
	PresetRPentomino = Preset{
		Name:  "R-pentomino",
		Cells: []Point{{0, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, -1}},
	}
	PresetPentaDecathlon = Preset{
		Name: "Penta-decathlon",
		Cells: []Point{
			{0, 0}, {-1, 0}, {-2, 1}, {-2, -1}, {-3, 0}, {-4, 0},
			{1, 0}, {2, 0}, {3, 1}, {3, -1}, {4, 0}, {5, 0},
		},
	}
)

// Presets lists the built-in patterns in menu order.
var Presets = []Preset{
	PresetBeacon,
	PresetGlider,
	PresetGosperGun,
	PresetRPentomino,
	PresetPentaDecathlon,
}

// PresetByName looks up a built-in preset, ignoring case.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
