package life

// Grid geometry in world units.
const (
	DefaultCellPitch = 13.0 // distance between cell origins
	DefaultCellSize  = 10.0
	MarkerOffset     = 3.0
	MarkerSize       = 4.0
)

// Palette holds the colors used to draw the grid.
type Palette struct {
	Live       Color
	Dead       Color
	Background Color
	Marker     Color
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Live:       ColorForeground,
		Dead:       ColorDead,
		Background: ColorBackground,
		Marker:     ColorMarker,
	}
}

// GridRenderer turns a grid into draw list geometry.
type GridRenderer struct {
	Pitch    float32
	CellSize float32
	Palette  Palette
}

// NewGridRenderer returns a renderer with the default geometry.
func NewGridRenderer(p Palette) *GridRenderer {
	return &GridRenderer{Pitch: DefaultCellPitch, CellSize: DefaultCellSize, Palette: p}
}

// CellOrigin returns the world position of the bottom-left corner of a cell.
func (r *GridRenderer) CellOrigin(p Point) Vec2 {
	return Vec2{X: float32(p.X) * r.Pitch, Y: float32(p.Y) * r.Pitch}
}

// AppendGrid appends one quad per cell and a marker quad on top of every
// border cell.
func (r *GridRenderer) AppendGrid(dl *DrawList, g *Grid) {
	size := Vec2{X: r.CellSize, Y: r.CellSize}
	for i := range g.cells {
		c := &g.cells[i]
		col := r.Palette.Dead
		if c.Alive {
			col = r.Palette.Live
		}
		dl.AddRect(r.CellOrigin(Point{c.X, c.Y}), size, col)
	}

	w, h := g.w, g.h
	for x := 0; x < w; x++ {
		r.appendMarker(dl, Point{x, 0})
		r.appendMarker(dl, Point{x, h - 1})
	}
	for y := 1; y < h-1; y++ {
		r.appendMarker(dl, Point{0, y})
		r.appendMarker(dl, Point{w - 1, y})
	}
}

func (r *GridRenderer) appendMarker(dl *DrawList, p Point) {
	dl.AddRect(r.markerPos(p), Vec2{X: MarkerSize, Y: MarkerSize}, r.Palette.Marker)
}

// AppendCursor appends the edit cursor marker over cell p.
func (r *GridRenderer) AppendCursor(dl *DrawList, p Point) {
	r.appendMarker(dl, p)
}

func (r *GridRenderer) markerPos(p Point) Vec2 {
	return r.CellOrigin(p).Add(Vec2{X: MarkerOffset, Y: MarkerOffset})
}

// Render draws one frame of the simulation: the grid in a single batch and,
// when cursor is set, the edit cursor with an immediate draw on top.
func (r *GridRenderer) Render(b *BatchGroup, sim *Simulation, cursor bool) error {
	b.Clear()
	r.AppendGrid(b.List(), sim.Grid())
	if err := b.Submit(); err != nil {
		return err
	}
	if !cursor {
		return nil
	}
	return b.DrawRectImmediate(r.markerPos(sim.Cursor()), Vec2{X: MarkerSize, Y: MarkerSize}, r.Palette.Marker)
}
