//go:build ebiten

// Package ebitengine runs a life session on Ebitengine. Draw lists are
// converted to ebiten triangles each frame; no GL context is required.
package ebitengine

import (
	"image"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-theft-auto/life"
	"github.com/go-theft-auto/life/internal/app"
)

// maxBatchVertices is the vertex limit of one DrawTriangles call, set by
// its uint16 indices.
const maxBatchVertices = 1<<16 - 1

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *app.Session
	input   *life.InputState
	list    *life.DrawList

	verts []ebiten.Vertex
	idx   []uint16
	title string
}

// New constructs a Game for the provided session.
func New(s *app.Session) *Game {
	return &Game{
		session: s,
		input:   life.NewInputState(),
		list:    life.AcquireDrawList(),
		verts:   make([]ebiten.Vertex, 0, maxBatchVertices),
		idx:     make([]uint16, 0, maxBatchVertices*3/2),
	}
}

// Update polls input and advances the simulation by one tick of the game
// loop.
func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	pollInput(g.input, float32(dt.Seconds()))

	quit, err := g.session.Frame(g.input, dt)
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}

	if t := g.session.Title(); t != g.title {
		g.title = t
		ebiten.SetWindowTitle(t)
	}
	return nil
}

// Draw renders the grid and, while editing, the cursor.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	bg := s.Renderer.Palette.Background.RGBA8()
	screen.Fill(bg)

	g.list.Clear()
	s.Renderer.AppendGrid(g.list, s.Sim.Grid())
	if s.Controller.Editing() {
		s.Renderer.AppendCursor(g.list, s.Sim.Cursor())
	}

	b := screen.Bounds()
	g.drawList(screen, s.Camera.Matrix(b.Dx(), b.Dy()), b.Dx(), b.Dy())
}

// Layout follows the window size so the camera works in device pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close releases the draw list.
func (g *Game) Close() {
	if g.list != nil {
		life.ReleaseDrawList(g.list)
		g.list = nil
	}
}

func (g *Game) drawList(screen *ebiten.Image, m mgl32.Mat4, w, h int) {
	dl := g.list
	vs := dl.Vertices()
	is := dl.Indices()
	cmds := dl.Commands()

	toScreen := func(v uint32) (float32, float32) {
		o := int(v) * life.FloatsPerVertex
		clip := m.Mul4x1(mgl32.Vec4{vs[o], vs[o+1], 0, 1})
		return (clip.X() + 1) * 0.5 * float32(w), (1 - clip.Y()) * 0.5 * float32(h)
	}

	g.verts, g.idx = g.verts[:0], g.idx[:0]
	for n, cmd := range cmds {
		end := uint32(dl.VertexCount())
		if n+1 < len(cmds) {
			end = cmds[n+1].VertexOffset
		}
		indices := is[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]

		if cmd.Primitive == life.Lines {
			g.flush(screen)
			for i := 0; i+1 < len(indices); i += 2 {
				x0, y0 := toScreen(indices[i])
				x1, y1 := toScreen(indices[i+1])
				o := int(indices[i])*life.FloatsPerVertex + 2
				c := life.Color{R: vs[o], G: vs[o+1], B: vs[o+2]}
				vector.StrokeLine(screen, x0, y0, x1, y1, 1, c.RGBA8(), false)
			}
			continue
		}

		count := int(end - cmd.VertexOffset)
		if len(g.verts)+count > maxBatchVertices {
			g.flush(screen)
		}
		base := uint32(len(g.verts))
		for v := cmd.VertexOffset; v < end; v++ {
			x, y := toScreen(v)
			o := int(v)*life.FloatsPerVertex + 2
			g.verts = append(g.verts, ebiten.Vertex{
				DstX: x, DstY: y,
				SrcX: 1, SrcY: 1,
				ColorR: vs[o], ColorG: vs[o+1], ColorB: vs[o+2], ColorA: 1,
			})
		}
		for _, ix := range indices {
			g.idx = append(g.idx, uint16(ix-cmd.VertexOffset+base))
		}
	}
	g.flush(screen)
}

func (g *Game) flush(screen *ebiten.Image) {
	if len(g.idx) > 0 {
		screen.DrawTriangles(g.verts, g.idx, whiteSubImage, &ebiten.DrawTrianglesOptions{})
	}
	g.verts, g.idx = g.verts[:0], g.idx[:0]
}
