// Command life runs Conway's Game of Life in a GLFW window rendered with
// OpenGL 4.1.
//
//	go run ./cmd/life -preset glider -step 100ms
//	go run ./cmd/life -headless -generations 500 -out life.png
//
// With -headless no window is opened: the simulation runs for the given
// number of generations and the final grid is written as a PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/life"
	"github.com/go-theft-auto/life/backend/opengl"
	"github.com/go-theft-auto/life/internal/app"
)

const windowTitle = "Life"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := life.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var err error
	if cfg.Headless {
		err = app.RunHeadless(cfg)
	} else {
		err = run(cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *life.Config) error {
	session, err := app.NewSession(cfg)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	life.Logger().Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	dev := opengl.NewDevice()
	// The whole grid is rebuilt and uploaded every frame.
	batch, err := life.NewBatchGroup(dev,
		life.WithCapacity(life.GridCapacity(cfg.Width, cfg.Height)),
		life.WithBufferMode(life.BufferStream))
	if err != nil {
		return fmt.Errorf("batch group: %w", err)
	}
	defer batch.Delete()

	program, err := opengl.NewProgram()
	if err != nil {
		return fmt.Errorf("shader program: %w", err)
	}
	defer program.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	bg := cfg.Palette.Background

	last := glfw.GetTime()
	title := ""
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		in := input.Poll(float32(dt))
		quit, err := session.Frame(in, time.Duration(dt*float64(time.Second)))
		if err != nil {
			return err
		}
		if quit {
			window.SetShouldClose(true)
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(bg.R, bg.G, bg.B, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		program.Use()
		program.SetCamera(session.Camera.Matrix(w, h))
		if err := session.Renderer.Render(batch, session.Sim, session.Controller.Editing()); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		if t := session.Title(); t != title {
			title = t
			window.SetTitle(t)
		}
		window.SwapBuffers()
	}

	return nil
}
