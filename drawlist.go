package life

import (
	"fmt"
	"sync"
)

// drawListPool provides reuse of DrawList buffers.
// A full grid frame is tens of thousands of quads, so the buffers are kept
// across batch groups instead of being regrown.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			vertices: make([]float32, 0, 4096*FloatsPerVertex),
			indices:  make([]uint32, 0, 6144),
			cmds:     make([]DrawCmd, 0, 1024),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates the geometry of a frame into one vertex buffer and
// one index buffer.
type DrawList struct {
	vertices    []float32 // Interleaved vertex data
	indices     []uint32  // Indices into vertices
	cmds        []DrawCmd // One record per appended shape
	vertexCount uint32    // Vertices appended since Clear

	scratch Scratch // Used by AddRect and AddLine
}

// Append copies a draw command into the list. Vertex floats are copied
// verbatim; indices are offset by the number of vertices already in the list
// so they keep pointing at the shape's own vertices.
//
// Append panics if the command references vertices it does not carry.
func (dl *DrawList) Append(cmd DrawCommand) {
	if cmd.AttributeCount != FloatsPerVertex {
		panic(fmt.Sprintf("life: draw command has %d floats per vertex, want %d", cmd.AttributeCount, FloatsPerVertex))
	}
	nFloats := int(cmd.VertexCount * cmd.AttributeCount)
	if len(cmd.Vertices) < nFloats || len(cmd.Indices) < int(cmd.IndexCount) {
		panic(fmt.Sprintf("life: draw command declares %d vertices and %d indices but carries %d floats and %d indices",
			cmd.VertexCount, cmd.IndexCount, len(cmd.Vertices), len(cmd.Indices)))
	}

	base := dl.vertexCount
	dl.cmds = append(dl.cmds, DrawCmd{
		Primitive:    cmd.Primitive,
		ElemCount:    cmd.IndexCount,
		VertexOffset: base,
		IndexOffset:  uint32(len(dl.indices)),
	})

	for _, idx := range cmd.Indices[:cmd.IndexCount] {
		if idx >= cmd.VertexCount {
			panic(fmt.Sprintf("life: draw command index %d out of range for %d vertices", idx, cmd.VertexCount))
		}
		dl.indices = append(dl.indices, idx+base)
	}

	dl.vertices = append(dl.vertices, cmd.Vertices[:nFloats]...)
	dl.vertexCount += cmd.VertexCount
}

// AddRect appends a filled rectangle.
func (dl *DrawList) AddRect(pos, size Vec2, c Color) {
	dl.Append(Rect(&dl.scratch, pos, size, c))
}

// AddLine appends a line segment.
func (dl *DrawList) AddLine(p1, p2 Vec2, c Color) {
	dl.Append(Line(&dl.scratch, p1, p2, c))
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.vertices = dl.vertices[:0]
	dl.indices = dl.indices[:0]
	dl.cmds = dl.cmds[:0]
	dl.vertexCount = 0
}

// IsEmpty reports whether nothing has been appended since the last Clear.
func (dl *DrawList) IsEmpty() bool {
	return len(dl.vertices) == 0 && len(dl.indices) == 0 && len(dl.cmds) == 0
}

// VertexCount returns the number of vertices in the list.
func (dl *DrawList) VertexCount() int { return int(dl.vertexCount) }

// IndexCount returns the number of indices in the list.
func (dl *DrawList) IndexCount() int { return len(dl.indices) }

// CommandCount returns the number of shapes appended since the last Clear.
func (dl *DrawList) CommandCount() int { return len(dl.cmds) }

// VertexByteSize returns the size of the vertex data in bytes.
func (dl *DrawList) VertexByteSize() int { return len(dl.vertices) * 4 }

// IndexByteSize returns the size of the index data in bytes.
func (dl *DrawList) IndexByteSize() int { return len(dl.indices) * IndexSize }

// Vertices returns the interleaved vertex data. The slice is only valid until
// the next Append or Clear.
func (dl *DrawList) Vertices() []float32 { return dl.vertices }

// Indices returns the index data. The slice is only valid until the next
// Append or Clear.
func (dl *DrawList) Indices() []uint32 { return dl.indices }

// Commands returns the per-shape records appended this frame.
func (dl *DrawList) Commands() []DrawCmd { return dl.cmds }

// Batches merges consecutive commands of the same primitive into runs.
// Each run can be drawn with a single indexed draw call.
func (dl *DrawList) Batches() []DrawCmd {
	if len(dl.cmds) == 0 {
		return nil
	}

	runs := make([]DrawCmd, 0, 4)
	cur := dl.cmds[0]
	for _, cmd := range dl.cmds[1:] {
		if cmd.Primitive == cur.Primitive && cmd.IndexOffset == cur.IndexOffset+cur.ElemCount {
			cur.ElemCount += cmd.ElemCount
			continue
		}
		runs = append(runs, cur)
		cur = cmd
	}
	return append(runs, cur)
}
