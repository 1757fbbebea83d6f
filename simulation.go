package life

import (
	"io"
	"math/rand/v2"
	"time"
)

// Parameter ranges exposed to the editor.
const (
	MinDistribution  = 1
	MaxDistribution  = 100
	MinConcentration = 1
	MaxConcentration = 100
	MinRadius        = 1
	MaxRadius        = 50
)

// Simulation is the whole mutable state of a running Life session: the grid,
// the generation counter, timing, the edit cursor and the randomizer
// settings. It is owned by the frame driver and is not safe for concurrent use.
type Simulation struct {
	grid       *Grid
	generation uint64
	elapsed    time.Duration // play time, frozen while paused
	step       *stepper
	paused     bool
	iterate    bool

	cursor Point
	random RandomParams
	rng    *rand.Rand
	start  Preset
}

// SimOption configures a Simulation.
type SimOption func(*Simulation)

// WithStepInterval sets the time between automatic ticks.
func WithStepInterval(d time.Duration) SimOption {
	return func(s *Simulation) { s.step.setInterval(d) }
}

// WithRandomParams sets the randomizer settings.
func WithRandomParams(p RandomParams) SimOption {
	return func(s *Simulation) {
		s.random = p
		s.clampRandom()
	}
}

// WithSeed seeds the randomizer.
func WithSeed(seed int64) SimOption {
	return func(s *Simulation) { s.rng = NewRand(seed) }
}

// WithStartPreset sets the pattern loaded by NewSimulation and Reset.
func WithStartPreset(p Preset) SimOption {
	return func(s *Simulation) { s.start = p }
}

// WithPaused starts the simulation paused.
func WithPaused(paused bool) SimOption {
	return func(s *Simulation) { s.paused = paused }
}

// NewSimulation creates a w×h simulation with the start preset loaded and
// the cursor centered.
func NewSimulation(w, h int, opts ...SimOption) *Simulation {
	s := &Simulation{
		grid:   NewGrid(w, h),
		step:   newStepper(DefaultStepInterval),
		random: DefaultRandomParams,
		rng:    NewRand(time.Now().UnixNano()),
		start:  PresetRPentomino,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.grid.LoadPreset(s.start)
	s.CenterCursor()
	return s
}

// Grid returns the simulation grid.
func (s *Simulation) Grid() *Grid { return s.grid }

// Generation returns the number of ticks since the last reset.
func (s *Simulation) Generation() uint64 { return s.generation }

// Elapsed returns the play time since the last reset, excluding pauses.
func (s *Simulation) Elapsed() time.Duration { return s.elapsed }

// Advance runs the per-frame simulation step. The border ring is enforced
// first; then one tick runs if the step interval elapsed while playing or an
// iterate request is pending. Both triggers are consumed, so at most one tick
// runs per frame and missed intervals are not caught up.
// Advance reports whether a tick ran.
func (s *Simulation) Advance(dt time.Duration) bool {
	s.grid.EnforceBorder()

	if !s.paused && dt > 0 {
		s.elapsed += dt
	}
	due := s.step.due(dt)
	iterate := s.iterate
	s.iterate = false

	if !(due && !s.paused) && !iterate {
		return false
	}
	s.grid.Step()
	s.generation++
	if Verbose() {
		logger.Debug("tick", "generation", s.generation, "population", s.grid.Population())
	}
	return true
}

// Paused reports whether automatic ticking is stopped.
func (s *Simulation) Paused() bool { return s.paused }

// Pause stops automatic ticking.
func (s *Simulation) Pause() { s.paused = true }

// Play resumes automatic ticking.
func (s *Simulation) Play() { s.paused = false }

// TogglePause flips between paused and playing.
func (s *Simulation) TogglePause() { s.paused = !s.paused }

// Iterate requests exactly one tick on the next Advance, paused or not.
func (s *Simulation) Iterate() { s.iterate = true }

// StepInterval returns the time between automatic ticks.
func (s *Simulation) StepInterval() time.Duration { return s.step.interval }

// SetStepInterval sets the time between automatic ticks, clamped to
// [MinStepInterval, MaxStepInterval].
func (s *Simulation) SetStepInterval(d time.Duration) { s.step.setInterval(d) }

// Reset clears the grid, reloads the start preset and zeroes the generation
// counter and play time.
func (s *Simulation) Reset() {
	s.generation = 0
	s.elapsed = 0
	s.iterate = false
	s.step.reset()
	s.grid.LoadPreset(s.start)
	logger.Info("simulation reset", "preset", s.start.Name)
}

// Cursor returns the edit cursor position.
func (s *Simulation) Cursor() Point { return s.cursor }

// SetCursor moves the edit cursor, clamped into the grid.
func (s *Simulation) SetCursor(x, y int) {
	s.cursor = Point{
		X: clampi(x, 0, s.grid.w-1),
		Y: clampi(y, 0, s.grid.h-1),
	}
}

// MoveCursor moves the edit cursor by (dx, dy), clamped into the grid.
func (s *Simulation) MoveCursor(dx, dy int) {
	s.SetCursor(s.cursor.X+dx, s.cursor.Y+dy)
}

// CenterCursor moves the edit cursor to the grid center.
func (s *Simulation) CenterCursor() {
	c := s.grid.Center()
	s.SetCursor(c.X, c.Y)
}

// ToggleAtCursor flips the cell under the cursor.
func (s *Simulation) ToggleAtCursor() { s.grid.Toggle(s.cursor.X, s.cursor.Y) }

// PlaceAtCursor makes the cell under the cursor alive.
func (s *Simulation) PlaceAtCursor() { s.grid.Set(s.cursor.X, s.cursor.Y, true) }

// RemoveAtCursor kills the cell under the cursor.
func (s *Simulation) RemoveAtCursor() { s.grid.Set(s.cursor.X, s.cursor.Y, false) }

// ClearCells kills every cell.
func (s *Simulation) ClearCells() {
	s.grid.Clear()
	logger.Debug("grid cleared")
}

// FillCells makes every cell alive.
func (s *Simulation) FillCells() {
	s.grid.Fill()
	logger.Debug("grid filled")
}

// Randomize rewrites the grid with the current randomizer settings.
func (s *Simulation) Randomize() {
	s.grid.Randomize(s.rng, s.random)
	logger.Debug("grid randomized",
		"distribution", s.random.Distribution,
		"concentration", s.random.Concentration,
		"radius", s.random.Radius,
		"population", s.grid.Population())
}

// LoadPreset clears the grid and loads the named preset at the center.
func (s *Simulation) LoadPreset(name string) error {
	p, err := PresetByName(name)
	if err != nil {
		return err
	}
	s.grid.LoadPreset(p)
	logger.Info("preset loaded", "preset", p.Name)
	return nil
}

// RandomParams returns the randomizer settings.
func (s *Simulation) RandomParams() RandomParams { return s.random }

// SetDistribution sets the 1-in-N seeding odds, clamped to [1, 100].
func (s *Simulation) SetDistribution(n int) {
	s.random.Distribution = n
	s.clampRandom()
}

// SetConcentration sets the percent odds around each seed, clamped to [1, 100].
func (s *Simulation) SetConcentration(pct int) {
	s.random.Concentration = pct
	s.clampRandom()
}

// SetConcentrationRadius sets the re-roll radius, clamped to [1, 50].
func (s *Simulation) SetConcentrationRadius(r int) {
	s.random.Radius = r
	s.clampRandom()
}

func (s *Simulation) clampRandom() {
	s.random.Distribution = clampi(s.random.Distribution, MinDistribution, MaxDistribution)
	s.random.Concentration = clampi(s.random.Concentration, MinConcentration, MaxConcentration)
	s.random.Radius = clampi(s.random.Radius, MinRadius, MaxRadius)
}

// WritePattern dumps the live cells to w.
func (s *Simulation) WritePattern(w io.Writer) error {
	return s.grid.WritePattern(w)
}
