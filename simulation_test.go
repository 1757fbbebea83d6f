package life_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-theft-auto/life"
)

func TestSimulationStartsWithPreset(t *testing.T) {
	sim := life.NewSimulation(20, 20, life.WithStartPreset(life.PresetBeacon))
	if got := sim.Grid().Population(); got != len(life.PresetBeacon.Cells) {
		t.Errorf("population = %d, want %d", got, len(life.PresetBeacon.Cells))
	}
	if sim.Cursor() != sim.Grid().Center() {
		t.Errorf("cursor = %v, want center", sim.Cursor())
	}
	if sim.Generation() != 0 {
		t.Errorf("generation = %d", sim.Generation())
	}
}

func TestSimulationStepGating(t *testing.T) {
	sim := life.NewSimulation(20, 20, life.WithStepInterval(100*time.Millisecond))

	if sim.Advance(50 * time.Millisecond) {
		t.Fatal("ticked before the interval elapsed")
	}
	if !sim.Advance(50 * time.Millisecond) {
		t.Fatal("did not tick once the interval elapsed")
	}
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", sim.Generation())
	}

	// A long frame yields a single tick and no backlog.
	if !sim.Advance(time.Second) {
		t.Fatal("did not tick on a long frame")
	}
	if sim.Advance(10 * time.Millisecond) {
		t.Fatal("caught up a missed interval")
	}
	if sim.Generation() != 2 {
		t.Errorf("generation = %d, want 2", sim.Generation())
	}
}

func TestSimulationPausedIterate(t *testing.T) {
	sim := life.NewSimulation(20, 20, life.WithPaused(true))

	for i := 0; i < 5; i++ {
		if sim.Advance(10 * time.Second) {
			t.Fatal("ticked while paused")
		}
	}
	if sim.Elapsed() != 0 {
		t.Errorf("elapsed = %v while paused", sim.Elapsed())
	}

	const n = 7
	for i := 0; i < n; i++ {
		sim.Iterate()
		if !sim.Advance(10 * time.Second) {
			t.Fatalf("iterate %d did not tick", i)
		}
	}
	if sim.Generation() != n {
		t.Errorf("generation = %d, want %d", sim.Generation(), n)
	}
}

func TestSimulationIterateWhilePlayingTicksOnce(t *testing.T) {
	sim := life.NewSimulation(20, 20, life.WithStepInterval(50*time.Millisecond))
	sim.Iterate()
	if !sim.Advance(time.Second) {
		t.Fatal("expected a tick")
	}
	if sim.Generation() != 1 {
		t.Errorf("generation = %d, want 1", sim.Generation())
	}
}

func TestSimulationPauseToggle(t *testing.T) {
	sim := life.NewSimulation(20, 20)
	if sim.Paused() {
		t.Fatal("should start playing")
	}
	sim.TogglePause()
	if !sim.Paused() {
		t.Fatal("TogglePause did not pause")
	}
	sim.Play()
	if sim.Paused() {
		t.Fatal("Play did not resume")
	}
	sim.Pause()
	if !sim.Paused() {
		t.Fatal("Pause did not pause")
	}
}

func TestSimulationStepIntervalClamped(t *testing.T) {
	sim := life.NewSimulation(20, 20)
	sim.SetStepInterval(time.Millisecond)
	if sim.StepInterval() != life.MinStepInterval {
		t.Errorf("interval = %v, want %v", sim.StepInterval(), life.MinStepInterval)
	}
	sim.SetStepInterval(time.Hour)
	if sim.StepInterval() != life.MaxStepInterval {
		t.Errorf("interval = %v, want %v", sim.StepInterval(), life.MaxStepInterval)
	}
}

func TestSimulationBorderEnforcedBeforeTick(t *testing.T) {
	sim := life.NewSimulation(10, 10, life.WithPaused(true))
	sim.ClearCells()
	sim.SetCursor(0, 5)
	sim.PlaceAtCursor()

	sim.Advance(0)
	if sim.Grid().Alive(0, 5) {
		t.Error("border cell survived Advance")
	}
}

func TestSimulationReset(t *testing.T) {
	sim := life.NewSimulation(30, 30, life.WithStartPreset(life.PresetGlider), life.WithStepInterval(10*time.Millisecond))
	for i := 0; i < 10; i++ {
		sim.Advance(20 * time.Millisecond)
	}
	sim.FillCells()
	sim.Reset()

	if sim.Generation() != 0 || sim.Elapsed() != 0 {
		t.Errorf("generation = %d elapsed = %v after reset", sim.Generation(), sim.Elapsed())
	}
	if sim.Grid().Population() != len(life.PresetGlider.Cells) {
		t.Errorf("population = %d after reset", sim.Grid().Population())
	}
}

func TestSimulationCursor(t *testing.T) {
	sim := life.NewSimulation(10, 8)
	sim.SetCursor(-5, 100)
	if got := sim.Cursor(); got != (life.Point{X: 0, Y: 7}) {
		t.Errorf("cursor = %v, want clamped to (0,7)", got)
	}
	sim.MoveCursor(100, -100)
	if got := sim.Cursor(); got != (life.Point{X: 9, Y: 0}) {
		t.Errorf("cursor = %v, want clamped to (9,0)", got)
	}
	sim.CenterCursor()
	if sim.Cursor() != sim.Grid().Center() {
		t.Errorf("cursor = %v, want center", sim.Cursor())
	}
}

func TestSimulationCursorEdits(t *testing.T) {
	sim := life.NewSimulation(10, 10)
	sim.ClearCells()
	sim.SetCursor(3, 4)

	sim.ToggleAtCursor()
	if !sim.Grid().Alive(3, 4) {
		t.Fatal("toggle did not set the cell")
	}
	sim.PlaceAtCursor()
	if !sim.Grid().Alive(3, 4) {
		t.Fatal("place killed the cell")
	}
	sim.RemoveAtCursor()
	if sim.Grid().Alive(3, 4) {
		t.Fatal("remove did not kill the cell")
	}
}

func TestSimulationLoadPreset(t *testing.T) {
	sim := life.NewSimulation(50, 50)
	if err := sim.LoadPreset("gosper glider gun"); err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if got := sim.Grid().Population(); got != len(life.PresetGosperGun.Cells) {
		t.Errorf("population = %d", got)
	}
	if err := sim.LoadPreset("nope"); !errors.Is(err, life.ErrUnknownPreset) {
		t.Errorf("LoadPreset(nope) = %v, want ErrUnknownPreset", err)
	}
}

func TestSimulationRandomParamsClamped(t *testing.T) {
	sim := life.NewSimulation(20, 20)
	sim.SetDistribution(0)
	sim.SetConcentration(500)
	sim.SetConcentrationRadius(-3)

	p := sim.RandomParams()
	if p.Distribution != life.MinDistribution || p.Concentration != life.MaxConcentration || p.Radius != life.MinRadius {
		t.Errorf("params = %+v", p)
	}
}

func TestSimulationRandomizeSeeded(t *testing.T) {
	a := life.NewSimulation(25, 25, life.WithSeed(9))
	b := life.NewSimulation(25, 25, life.WithSeed(9))
	a.Randomize()
	b.Randomize()

	var pa, pb bytes.Buffer
	if err := a.WritePattern(&pa); err != nil {
		t.Fatal(err)
	}
	if err := b.WritePattern(&pb); err != nil {
		t.Fatal(err)
	}
	if pa.String() != pb.String() {
		t.Error("same seed produced different grids")
	}
	if !strings.HasPrefix(pa.String(), "Pattern Coords:\n") {
		t.Errorf("pattern = %q", pa.String())
	}
}
