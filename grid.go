package life

import (
	"bufio"
	"fmt"
	"io"
)

// Default grid dimensions.
const (
	DefaultGridWidth  = 120
	DefaultGridHeight = 120
)

// Cell is a single grid cell. X and Y equal the cell's position in the grid.
type Cell struct {
	X, Y  int
	Alive bool
}

// Grid is a fixed-size Life grid with a dead border ring.
//
// cells holds the current generation; prev is the shadow copy of the alive
// flags the neighbor rule reads from. prev is refreshed once per tick after
// every cell has been updated, so a tick is all-or-nothing.
type Grid struct {
	w, h  int
	cells []Cell
	prev  []bool
}

// NewGrid returns an empty w×h grid. Both dimensions must be at least 3 so
// the grid has an interior.
func NewGrid(w, h int) *Grid {
	if w < 3 || h < 3 {
		panic(fmt.Sprintf("life: grid %dx%d has no interior", w, h))
	}
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
		prev:  make([]bool, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = Cell{X: x, Y: y}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Center returns the grid center, the origin used for presets.
func (g *Grid) Center() Point { return Point{X: g.w / 2, Y: g.h / 2} }

// InBounds reports whether (x, y) is a grid coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// IsBorder reports whether (x, y) lies on the outermost ring.
func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.w-1 || y == g.h-1
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return y*g.w + x
}

// Cell returns the cell at (x, y).
func (g *Grid) Cell(x, y int) Cell { return g.cells[g.index(x, y)] }

// Alive reports whether the cell at (x, y) is alive.
func (g *Grid) Alive(x, y int) bool { return g.cells[g.index(x, y)].Alive }

// Set writes the alive flag of a cell and its shadow. Border cells may be
// set; the next border enforcement clears them.
func (g *Grid) Set(x, y int, alive bool) {
	i := g.index(x, y)
	g.cells[i].Alive = alive
	g.prev[i] = alive
}

// Toggle flips a cell and its shadow.
func (g *Grid) Toggle(x, y int) {
	i := g.index(x, y)
	g.cells[i].Alive = !g.cells[i].Alive
	g.prev[i] = g.cells[i].Alive
}

// Clear kills every cell.
func (g *Grid) Clear() { g.setAll(false) }

// Fill makes every cell alive, border included.
func (g *Grid) Fill() { g.setAll(true) }

func (g *Grid) setAll(alive bool) {
	for i := range g.cells {
		g.cells[i].Alive = alive
		g.prev[i] = alive
	}
}

// NextState is the Life transition function.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// LiveNeighbors counts the live cells in the Moore neighborhood of (x, y)
// as of the start of the current tick. Coordinates outside the grid count
// as dead.
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g.prev[ny*g.w+nx] {
				n++
			}
		}
	}
	return n
}

// Step advances the grid one generation. Interior cells are updated from the
// shadow, the shadow is refreshed, then the border ring is forced dead.
func (g *Grid) Step() {
	w := g.w
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < w-1; x++ {
			c := &g.cells[y*w+x]
			c.Alive = NextState(g.prev[y*w+x], g.LiveNeighbors(x, y))
		}
	}
	for i := range g.cells {
		g.prev[i] = g.cells[i].Alive
	}
	g.EnforceBorder()
}

// EnforceBorder forces every cell on the outer ring dead.
func (g *Grid) EnforceBorder() {
	w, h := g.w, g.h
	for x := 0; x < w; x++ {
		g.kill(x, 0)
		g.kill(x, h-1)
	}
	for y := 1; y < h-1; y++ {
		g.kill(0, y)
		g.kill(w-1, y)
	}
}

func (g *Grid) kill(x, y int) {
	i := y*g.w + x
	g.cells[i].Alive = false
	g.prev[i] = false
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			n++
		}
	}
	return n
}

// LiveCells returns the coordinates of every live cell in column-major
// order (x outer, y inner).
func (g *Grid) LiveCells() []Point {
	var pts []Point
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			if g.cells[y*g.w+x].Alive {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// WritePattern writes the live cells as a coordinate list, one "[x][y]" per
// line, after a "Pattern Coords:" header.
func (g *Grid) WritePattern(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Pattern Coords:")
	for _, p := range g.LiveCells() {
		fmt.Fprintf(bw, "[%d][%d]\n", p.X, p.Y)
	}
	return bw.Flush()
}

// LoadPreset clears the grid and writes the preset at the grid center.
// The preset must fit inside the grid.
func (g *Grid) LoadPreset(p Preset) {
	g.Clear()
	origin := g.Center()
	for _, off := range p.Cells {
		c := origin.Add(off)
		g.Set(c.X, c.Y, true)
	}
}
