package life_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/life"
)

func TestPresetByName(t *testing.T) {
	for _, p := range life.Presets {
		got, err := life.PresetByName(p.Name)
		if err != nil {
			t.Errorf("PresetByName(%q): %v", p.Name, err)
			continue
		}
		if got.Name != p.Name {
			t.Errorf("PresetByName(%q) = %q", p.Name, got.Name)
		}
	}
	if _, err := life.PresetByName("r-PENTOMINO"); err != nil {
		t.Errorf("lookup should ignore case: %v", err)
	}
	if _, err := life.PresetByName("loaf"); !errors.Is(err, life.ErrUnknownPreset) {
		t.Errorf("PresetByName(loaf) = %v", err)
	}
}

func TestPresetsFitDefaultGrid(t *testing.T) {
	for _, p := range life.Presets {
		if !p.FitsInterior(life.DefaultGridWidth, life.DefaultGridHeight) {
			t.Errorf("%s does not fit the default grid", p.Name)
		}
	}
	if life.PresetGosperGun.FitsInterior(37, 20) {
		t.Error("gun should not fit a 37 wide grid")
	}
	if !life.PresetGosperGun.FitsInterior(38, 11) {
		t.Error("gun should fit a 38x11 grid")
	}
}

func TestPresetBounds(t *testing.T) {
	lo, hi := life.PresetGosperGun.Bounds()
	if lo != (life.Point{X: -18, Y: -4}) || hi != (life.Point{X: 17, Y: 4}) {
		t.Errorf("bounds = %v %v", lo, hi)
	}
}

func TestBeaconOscillates(t *testing.T) {
	g := life.NewGrid(12, 12)
	g.LoadPreset(life.PresetBeacon)
	start := g.Population()
	g.Step()
	if g.Population() == start {
		t.Error("beacon did not change phase")
	}
	g.Step()
	if g.Population() != start {
		t.Errorf("beacon population = %d, want %d", g.Population(), start)
	}
}
