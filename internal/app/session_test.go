package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-theft-auto/life"
	"github.com/go-theft-auto/life/internal/app"
)

func newConfig() *life.Config {
	cfg := life.NewConfig()
	cfg.Width, cfg.Height = 40, 40
	cfg.Seed = 1
	cfg.Paused = true
	return cfg
}

func TestSessionPrintPattern(t *testing.T) {
	s, err := app.NewSession(newConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	var out bytes.Buffer
	s.Stdout = &out

	in := life.NewInputState()
	in.SetKey(life.KeyO, true)
	quit, err := s.Frame(in, 16*time.Millisecond)
	if err != nil || quit {
		t.Fatalf("Frame = %v, %v", quit, err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] != "Pattern Coords:" || len(lines) != 1+len(life.PresetRPentomino.Cells) {
		t.Errorf("printed pattern = %q", out.String())
	}
}

func TestSessionQuit(t *testing.T) {
	s, err := app.NewSession(newConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	in := life.NewInputState()
	in.SetKey(life.KeyEscape, true)
	quit, err := s.Frame(in, 16*time.Millisecond)
	if err != nil || !quit {
		t.Errorf("Frame = %v, %v, want quit", quit, err)
	}
}

func TestSessionTitle(t *testing.T) {
	s, err := app.NewSession(newConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if title := s.Title(); !strings.Contains(title, "gen 0") || !strings.Contains(title, "paused") {
		t.Errorf("Title = %q", title)
	}
}

func TestSessionTitleShowsElapsedAndRandomParams(t *testing.T) {
	s, err := app.NewSession(newConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Sim.Play()
	s.Sim.SetStepInterval(time.Second)
	s.Sim.Advance(1500 * time.Millisecond)
	s.Sim.Advance(1500 * time.Millisecond)
	s.Sim.SetDistribution(4)
	s.Sim.SetConcentration(50)
	s.Sim.SetConcentrationRadius(3)

	title := s.Title()
	for _, want := range []string{"elapsed 3s", "random 1/4 50% r3"} {
		if !strings.Contains(title, want) {
			t.Errorf("Title = %q, missing %q", title, want)
		}
	}
}

func TestSessionInvalidConfig(t *testing.T) {
	cfg := newConfig()
	cfg.Preset = "nope"
	if _, err := app.NewSession(cfg); err == nil {
		t.Error("expected error")
	}
}

func TestRunHeadless(t *testing.T) {
	cfg := newConfig()
	cfg.Headless = true
	cfg.Generations = 12
	cfg.Out = filepath.Join(t.TempDir(), "out.png")

	if err := app.RunHeadless(cfg); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	fi, err := os.Stat(cfg.Out)
	if err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	if fi.Size() == 0 {
		t.Error("snapshot is empty")
	}
}
