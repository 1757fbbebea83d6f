package life

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Default palette.
var (
	ColorForeground = Color{0.78, 0.82, 1.0}    // live cell
	ColorDead       = Color{0.098, 0.094, 0.156} // dead cell
	ColorBackground = Color{0.12, 0.11, 0.18}    // clear color
	ColorMarker     = Color{0.97, 0.46, 0.55}    // border marker and edit cursor
)

// Vertex represents a vertex for grid rendering.
// Memory layout matches the attribute layout in DefaultLayout.
type Vertex struct {
	Pos   [2]float32 // Position (x, y)
	Color [3]float32 // RGB color
}

// Vertex layout constants.
const (
	FloatsPerVertex = 5
	VertexStride    = FloatsPerVertex * 4 // bytes
	IndexSize       = 4                   // bytes per uint32 index
)

// Primitive is the topology a draw command's indices describe.
type Primitive uint8

const (
	Triangles Primitive = iota
	Lines
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// DrawCmd records where one appended shape lives inside a DrawList.
type DrawCmd struct {
	Primitive    Primitive // Index topology
	ElemCount    uint32    // Number of indices to draw
	VertexOffset uint32    // First vertex of the shape
	IndexOffset  uint32    // First index of the shape
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampi clamps an int value to a range.
func clampi(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
