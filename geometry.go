package life

// DrawCommand is a transient single-shape request. It references caller-owned
// vertex and index storage and is only valid for the duration of the
// DrawList.Append call that consumes it.
type DrawCommand struct {
	Vertices       []float32 // Interleaved vertex data
	Indices        []uint32  // Indices relative to the first vertex of Vertices
	VertexCount    uint32
	IndexCount     uint32
	AttributeCount uint32 // Floats per vertex
	Primitive      Primitive
}

// Scratch is caller-owned storage for one primitive's vertices.
// Large enough for a quad.
type Scratch [4 * FloatsPerVertex]float32

var (
	quadIndices = [6]uint32{0, 1, 2, 0, 2, 3}
	lineIndices = [2]uint32{0, 1}
)

// Rect expands a rectangle into a 4-vertex quad. Vertices are ordered
// top-left, bottom-left, bottom-right, top-right in a y-up space so that the
// triangles (0,1,2) and (0,2,3) cover it.
func Rect(s *Scratch, pos, size Vec2, c Color) DrawCommand {
	x0, y0 := pos.X, pos.Y
	x1, y1 := pos.X+size.X, pos.Y+size.Y

	s[0], s[1], s[2], s[3], s[4] = x0, y1, c.R, c.G, c.B
	s[5], s[6], s[7], s[8], s[9] = x0, y0, c.R, c.G, c.B
	s[10], s[11], s[12], s[13], s[14] = x1, y0, c.R, c.G, c.B
	s[15], s[16], s[17], s[18], s[19] = x1, y1, c.R, c.G, c.B

	return DrawCommand{
		Vertices:       s[:],
		Indices:        quadIndices[:],
		VertexCount:    4,
		IndexCount:     uint32(len(quadIndices)),
		AttributeCount: FloatsPerVertex,
		Primitive:      Triangles,
	}
}

// Line expands a segment into a 2-vertex, 2-index line.
func Line(s *Scratch, p1, p2 Vec2, c Color) DrawCommand {
	s[0], s[1], s[2], s[3], s[4] = p1.X, p1.Y, c.R, c.G, c.B
	s[5], s[6], s[7], s[8], s[9] = p2.X, p2.Y, c.R, c.G, c.B

	return DrawCommand{
		Vertices:       s[:2*FloatsPerVertex],
		Indices:        lineIndices[:],
		VertexCount:    2,
		IndexCount:     uint32(len(lineIndices)),
		AttributeCount: FloatsPerVertex,
		Primitive:      Lines,
	}
}
