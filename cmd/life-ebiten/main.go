//go:build ebiten

// Command life-ebiten runs Conway's Game of Life on Ebitengine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/life"
	"github.com/go-theft-auto/life/backend/ebitengine"
	"github.com/go-theft-auto/life/internal/app"
)

func main() {
	cfg := life.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *life.Config) error {
	if cfg.Headless {
		return app.RunHeadless(cfg)
	}

	session, err := app.NewSession(cfg)
	if err != nil {
		return err
	}
	game := ebitengine.New(session)
	defer game.Close()

	ebiten.SetWindowTitle(session.Title())
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.VSync)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
