/*
Package life renders a Conway's Game of Life grid through a batched draw list.

# Overview

The package has two halves that meet once per frame.

The simulation half is a fixed-size Grid with a dead border ring, wrapped by
a Simulation that owns the generation counter, the step interval, the pause
and single-step state, the edit cursor and the randomizer settings. A tick
reads every neighbor count from a shadow copy of the previous generation, so
the order cells are visited in never matters.

The rendering half expands rectangles and lines into interleaved vertices
(x, y, r, g, b) on a DrawList and uploads the whole frame through a
BatchGroup: one vertex upload, one index upload and one indexed draw for a
frame of quads. The graphics API sits behind the Device interface;
backend/opengl implements it on OpenGL 4.1 and backend/ebitengine draws the
same lists with Ebitengine. The snapshot package rasterizes a DrawList on the
CPU to write PNG files.

# Quick Start

	// Setup
	cfg := life.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
	    return err
	}

	sim := cfg.NewSimulation()
	renderer := life.NewGridRenderer(cfg.Palette)
	cam := life.NewCamera(cfg.Width, cfg.Height, renderer.Pitch)
	controls := life.NewController(sim, cam, renderer.Pitch)

	batch, _ := life.NewBatchGroup(opengl.NewDevice(),
	    life.WithCapacity(life.GridCapacity(cfg.Width, cfg.Height)))
	defer batch.Delete()

	// Frame loop
	for !window.ShouldClose() {
	    in := input.Poll(dt)
	    controls.Update(in, frameTime)
	    sim.Advance(frameTime)

	    program.SetCamera(cam.Matrix(w, h))
	    renderer.Render(batch, sim, controls.Editing())
	    window.SwapBuffers()
	}

Advance runs at most one tick per frame. Time spent past a due tick is
dropped rather than caught up, so a slow frame never triggers a burst of
generations.

# Keyboard Shortcuts Reference

## Camera

	W A S D          Pan
	- =              Zoom out / in
	Mouse Wheel      Zoom
	Shift            Hold for fast pan and zoom

## Simulation

	P                Pause / play
	N                Run exactly one generation
	[ ]              Step interval -10ms / +10ms (10ms..1s)
	0                Reset to the start preset
	1-5              Load Beacon, Glider, Gosper glider gun, R-pentomino,
	                 Penta-decathlon at the grid center
	X                Kill every cell
	Z                Fill every cell
	R                Randomize with the current settings
	6 7              Distribution -1 / +1 (1..100)
	8 9              Concentration -1% / +1% (1..100)
	, .              Concentration radius -1 / +1 (1..50)

## Editor

	Tab              Open / close the editor
	H J K L          Move the cursor (repeats while held)
	Space            Toggle the cell under the cursor
	Enter            Place a live cell
	Backspace        Remove the cell
	G                Move the camera to the cursor
	F                Follow the cursor with the camera
	C                Move the cursor to the grid center

## Session

	O                Print live cells to stdout
	F12              Write a PNG snapshot
	Esc              Quit

# Randomize

Randomize visits cells column by column. Each cell is seeded alive with odds
1 in Distribution. Around every seed the square [x-R, x+R) × [y-R, y+R),
clamped into the grid, is re-rolled with Concentration percent odds. Later
visits overwrite earlier re-rolls, so the scan order is part of the result.

# Pattern Output

WritePattern prints the live cells column by column:

	Pattern Coords:
	[59][60]
	[60][59]
*/
package life
