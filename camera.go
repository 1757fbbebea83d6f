package life

import "github.com/go-gl/mathgl/mgl32"

// Camera movement tuning.
const (
	PanSpeed       = 1000.0 // world units per second
	PanFastFactor  = 10.0
	ZoomSpeed      = 2.0 // scale units per second
	ZoomFastFactor = 5.0
	MinZoom        = 0.5
)

// Camera is a 2D orthographic camera over the grid. X and Y are the world
// position at the center of the viewport; Zoom is world units per pixel.
type Camera struct {
	X, Y float32
	Zoom float32

	maxX, maxY float32
}

// NewCamera returns a camera centered over a w×h grid drawn at the given
// cell pitch.
func NewCamera(w, h int, pitch float32) *Camera {
	maxX, maxY := float32(w)*pitch, float32(h)*pitch
	return &Camera{X: maxX * 0.5, Y: maxY * 0.5, Zoom: 1, maxX: maxX, maxY: maxY}
}

// Pan moves the camera by a direction scaled by PanSpeed and dt.
func (c *Camera) Pan(dirX, dirY, dt float32, fast bool) {
	speed := float32(PanSpeed)
	if fast {
		speed *= PanFastFactor
	}
	c.X += dirX * speed * dt
	c.Y += dirY * speed * dt
	c.clamp()
}

// ZoomBy changes the zoom by a direction scaled by ZoomSpeed and dt. A
// positive direction zooms out.
func (c *Camera) ZoomBy(dir, dt float32, fast bool) {
	speed := float32(ZoomSpeed)
	if fast {
		speed *= ZoomFastFactor
	}
	c.Zoom += dir * speed * dt
	c.clamp()
}

// MoveTo centers the camera on a world position.
func (c *Camera) MoveTo(x, y float32) {
	c.X, c.Y = x, y
	c.clamp()
}

func (c *Camera) clamp() {
	c.X = clampf(c.X, 0, c.maxX)
	c.Y = clampf(c.Y, 0, c.maxY)
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
}

// Matrix returns the projection-view matrix for a viewport of the given
// size in pixels.
func (c *Camera) Matrix(viewW, viewH int) mgl32.Mat4 {
	hw := float32(viewW) * 0.5 * c.Zoom
	hh := float32(viewH) * 0.5 * c.Zoom
	proj := mgl32.Ortho2D(-hw, hw, -hh, hh)
	view := mgl32.Translate3D(c.X, c.Y, 0).Inv()
	return proj.Mul4(view)
}

// WorldToScreen maps a world position to pixel coordinates with the origin
// at the top-left of the viewport.
func (c *Camera) WorldToScreen(p Vec2, viewW, viewH int) Vec2 {
	clip := c.Matrix(viewW, viewH).Mul4x1(mgl32.Vec4{p.X, p.Y, 0, 1})
	return Vec2{
		X: (clip.X() + 1) * 0.5 * float32(viewW),
		Y: (1 - clip.Y()) * 0.5 * float32(viewH),
	}
}
