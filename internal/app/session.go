// Package app wires the simulation, controls and renderer into a session
// shared by the windowed front ends and the headless runner.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-theft-auto/life"
	"github.com/go-theft-auto/life/snapshot"
)

var log = life.Logger()

// Session owns everything a front end drives once per frame except the
// graphics backend.
type Session struct {
	Config     *life.Config
	Sim        *life.Simulation
	Camera     *life.Camera
	Controller *life.Controller
	Renderer   *life.GridRenderer

	// Stdout receives printed patterns.
	Stdout io.Writer

	snapshots int
}

// NewSession validates cfg and builds a session from it.
func NewSession(cfg *life.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	life.SetVerbose(cfg.Verbose)

	sim := cfg.NewSimulation()
	r := life.NewGridRenderer(cfg.Palette)
	cam := life.NewCamera(cfg.Width, cfg.Height, r.Pitch)
	log.Info("session started",
		"grid", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"preset", cfg.Preset,
		"step", cfg.Step,
		"seed", cfg.Seed)

	return &Session{
		Config:     cfg,
		Sim:        sim,
		Camera:     cam,
		Controller: life.NewController(sim, cam, r.Pitch),
		Renderer:   r,
		Stdout:     os.Stdout,
	}, nil
}

// Frame applies one frame of input and advances the simulation. It reports
// whether the user asked to quit.
func (s *Session) Frame(in *life.InputState, dt time.Duration) (quit bool, err error) {
	for _, req := range s.Controller.Update(in, dt) {
		switch req {
		case life.RequestQuit:
			quit = true
		case life.RequestPrintPattern:
			if err := s.Sim.WritePattern(s.Stdout); err != nil {
				return quit, fmt.Errorf("print pattern: %w", err)
			}
		case life.RequestSnapshot:
			path := s.nextSnapshotPath()
			if err := s.Snapshot(path); err != nil {
				// A failed snapshot is not fatal to an interactive session.
				log.Error("snapshot failed", "path", path, "err", err)
				continue
			}
			log.Info("snapshot written", "path", path, "generation", s.Sim.Generation())
		}
	}
	s.Sim.Advance(dt)
	return quit, nil
}

// Title returns the window title for the current state.
func (s *Session) Title() string {
	state := "running"
	if s.Sim.Paused() {
		state = "paused"
	}
	rp := s.Sim.RandomParams()
	title := fmt.Sprintf("Life | gen %d | %d alive | %v | %s | elapsed %v | random 1/%d %d%% r%d",
		s.Sim.Generation(), s.Sim.Grid().Population(), s.Sim.StepInterval(), state,
		s.Sim.Elapsed().Truncate(time.Second),
		rp.Distribution, rp.Concentration, rp.Radius)
	if s.Controller.Editing() {
		c := s.Sim.Cursor()
		title += fmt.Sprintf(" | edit (%d,%d)", c.X, c.Y)
	}
	return title
}

func (s *Session) nextSnapshotPath() string {
	s.snapshots++
	return fmt.Sprintf("life-%d-%03d.png", s.Sim.Generation(), s.snapshots)
}

// Snapshot rasterizes the current grid into a PNG file.
func (s *Session) Snapshot(path string) error {
	list := life.AcquireDrawList()
	defer life.ReleaseDrawList(list)

	s.Renderer.AppendGrid(list, s.Sim.Grid())
	opts := snapshot.DefaultOptions()
	opts.Background = s.Renderer.Palette.Background
	return snapshot.SavePNG(path, list, opts)
}

// RunHeadless simulates cfg.Generations generations without a window,
// prints the final pattern when verbose and writes cfg.Out.
func RunHeadless(cfg *life.Config) error {
	s, err := NewSession(cfg)
	if err != nil {
		return err
	}
	start := time.Now()
	for i := 0; i < cfg.Generations; i++ {
		s.Sim.Iterate()
		s.Sim.Advance(0)
	}
	log.Info("headless run finished",
		"generations", s.Sim.Generation(),
		"population", s.Sim.Grid().Population(),
		"took", time.Since(start))

	if cfg.Verbose {
		if err := s.Sim.WritePattern(s.Stdout); err != nil {
			return err
		}
	}
	if err := s.Snapshot(cfg.Out); err != nil {
		return err
	}
	log.Info("snapshot written", "path", cfg.Out)
	return nil
}
