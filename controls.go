package life

import (
	"fmt"
	"time"
)

// Request is an effect the controls cannot perform on their own and hand
// back to the frame driver.
type Request uint8

const (
	RequestPrintPattern Request = iota + 1
	RequestSnapshot
	RequestQuit
)

// String returns the request name.
func (r Request) String() string {
	switch r {
	case RequestPrintPattern:
		return "print-pattern"
	case RequestSnapshot:
		return "snapshot"
	case RequestQuit:
		return "quit"
	default:
		return fmt.Sprintf("request(%d)", uint8(r))
	}
}

// StepIntervalIncrement is the change applied by the step interval hotkeys.
const StepIntervalIncrement = 10 * time.Millisecond

// Controller maps per-frame input onto the simulation and the camera.
type Controller struct {
	sim     *Simulation
	cam     *Camera
	pitch   float32
	actions *ActionRegistry

	editing bool
	follow  bool
	pending []Request
}

// NewController binds the default hotkeys for sim and cam. pitch is the
// world distance between cells, used to move the camera onto the cursor.
func NewController(sim *Simulation, cam *Camera, pitch float32) *Controller {
	c := &Controller{
		sim:     sim,
		cam:     cam,
		pitch:   pitch,
		actions: NewActionRegistry(),
	}
	c.bind()
	return c
}

func (c *Controller) bind() {
	a := c.actions
	editing := func() bool { return c.editing }

	a.Register("pause", KeyP, func() {
		c.sim.TogglePause()
		logger.Info("pause toggled", "paused", c.sim.Paused())
	})
	a.Register("iterate", KeyN, c.sim.Iterate)
	a.Register("editor", KeyTab, func() {
		c.editing = !c.editing
		if !c.editing {
			c.follow = false
		}
	})

	a.RegisterWithCondition("cursor-up", KeyK, Repeated(KeyK), func() { c.sim.MoveCursor(0, 1) }, editing)
	a.RegisterWithCondition("cursor-down", KeyJ, Repeated(KeyJ), func() { c.sim.MoveCursor(0, -1) }, editing)
	a.RegisterWithCondition("cursor-left", KeyH, Repeated(KeyH), func() { c.sim.MoveCursor(-1, 0) }, editing)
	a.RegisterWithCondition("cursor-right", KeyL, Repeated(KeyL), func() { c.sim.MoveCursor(1, 0) }, editing)
	a.RegisterWithCondition("toggle-cell", KeySpace, Pressed(KeySpace), c.sim.ToggleAtCursor, editing)
	a.RegisterWithCondition("place-cell", KeyEnter, Pressed(KeyEnter), c.sim.PlaceAtCursor, editing)
	a.RegisterWithCondition("remove-cell", KeyBackspace, Pressed(KeyBackspace), c.sim.RemoveAtCursor, editing)
	a.RegisterWithCondition("go-to-cursor", KeyG, Pressed(KeyG), c.focusCursor, editing)
	a.RegisterWithCondition("follow-cursor", KeyF, Pressed(KeyF), func() { c.follow = !c.follow }, editing)
	a.RegisterWithCondition("center-cursor", KeyC, Pressed(KeyC), c.sim.CenterCursor, editing)

	a.Register("clear", KeyX, c.sim.ClearCells)
	a.Register("fill", KeyZ, c.sim.FillCells)
	a.Register("randomize", KeyR, c.sim.Randomize)
	a.Register("reset", Key0, c.sim.Reset)
	for i, p := range Presets {
		name := p.Name
		a.Register("preset "+name, Key1+Key(i), func() {
			if err := c.sim.LoadPreset(name); err != nil {
				logger.Error("load preset", "preset", name, "err", err)
			}
		})
	}

	a.RegisterWithCondition("slower", KeyRightBracket, Repeated(KeyRightBracket), func() {
		c.sim.SetStepInterval(c.sim.StepInterval() + StepIntervalIncrement)
	}, nil)
	a.RegisterWithCondition("faster", KeyLeftBracket, Repeated(KeyLeftBracket), func() {
		c.sim.SetStepInterval(c.sim.StepInterval() - StepIntervalIncrement)
	}, nil)

	c.bindRandomParam("distribution", Key6, Key7, func(d int) {
		c.sim.SetDistribution(c.sim.RandomParams().Distribution + d)
	})
	c.bindRandomParam("concentration", Key8, Key9, func(d int) {
		c.sim.SetConcentration(c.sim.RandomParams().Concentration + d)
	})
	c.bindRandomParam("radius", KeyComma, KeyPeriod, func(d int) {
		c.sim.SetConcentrationRadius(c.sim.RandomParams().Radius + d)
	})

	a.Register("print-pattern", KeyO, func() { c.pending = append(c.pending, RequestPrintPattern) })
	a.Register("snapshot", KeyF12, func() { c.pending = append(c.pending, RequestSnapshot) })
	a.Register("quit", KeyEscape, func() { c.pending = append(c.pending, RequestQuit) })
}

// bindRandomParam binds a decrement and an increment key for one randomizer
// setting. Both repeat while held.
func (c *Controller) bindRandomParam(name string, down, up Key, adjust func(delta int)) {
	logChange := func() {
		p := c.sim.RandomParams()
		logger.Debug("random params",
			"distribution", p.Distribution,
			"concentration", p.Concentration,
			"radius", p.Radius)
	}
	c.actions.RegisterWithCondition(name+"-down", down, Repeated(down), func() {
		adjust(-1)
		logChange()
	}, nil)
	c.actions.RegisterWithCondition(name+"-up", up, Repeated(up), func() {
		adjust(1)
		logChange()
	}, nil)
}

// Actions returns the bound hotkeys.
func (c *Controller) Actions() *ActionRegistry { return c.actions }

// Editing reports whether the editor is open. The cursor is only drawn and
// the edit hotkeys only act while it is.
func (c *Controller) Editing() bool { return c.editing }

// Following reports whether the camera tracks the cursor.
func (c *Controller) Following() bool { return c.follow }

// Update applies one frame of input. It must run before Simulation.Advance
// so edits never land in the middle of a tick. The returned requests are
// valid until the next Update.
func (c *Controller) Update(in *InputState, dt time.Duration) []Request {
	c.pending = c.pending[:0]
	secs := float32(dt.Seconds())

	var dx, dy float32
	if in.KeyDown(KeyD) {
		dx++
	}
	if in.KeyDown(KeyA) {
		dx--
	}
	if in.KeyDown(KeyW) {
		dy++
	}
	if in.KeyDown(KeyS) {
		dy--
	}
	if dx != 0 || dy != 0 {
		c.cam.Pan(dx, dy, secs, in.ModShift)
	}

	var zoom float32
	if in.KeyDown(KeyMinus) {
		zoom++
	}
	if in.KeyDown(KeyEqual) {
		zoom--
	}
	if zoom != 0 {
		c.cam.ZoomBy(zoom, secs, in.ModShift)
	}
	if in.WheelY != 0 {
		// One wheel notch zooms as much as a tenth of a second of key hold.
		c.cam.ZoomBy(-in.WheelY, 0.1, in.ModShift)
	}

	c.actions.HandleActions(in)

	if c.follow {
		c.focusCursor()
	}
	return c.pending
}

func (c *Controller) focusCursor() {
	p := c.sim.Cursor()
	c.cam.MoveTo(float32(p.X)*c.pitch, float32(p.Y)*c.pitch)
}
