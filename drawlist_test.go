package life_test

import (
	"testing"
	"unsafe"

	"github.com/go-theft-auto/life"
)

func TestDrawListRectAndLine(t *testing.T) {
	dl := life.AcquireDrawList()
	defer life.ReleaseDrawList(dl)

	dl.AddRect(life.Vec2{X: 0, Y: 0}, life.Vec2{X: 10, Y: 10}, life.ColorForeground)
	dl.AddLine(life.Vec2{X: 0, Y: 0}, life.Vec2{X: 5, Y: 5}, life.ColorMarker)

	if got := dl.VertexCount(); got != 6 {
		t.Errorf("VertexCount = %d, want 6", got)
	}
	if got := dl.IndexCount(); got != 8 {
		t.Errorf("IndexCount = %d, want 8", got)
	}
	if got := len(dl.Vertices()); got != 6*life.FloatsPerVertex {
		t.Errorf("len(Vertices) = %d, want %d", got, 6*life.FloatsPerVertex)
	}
	if got := dl.VertexByteSize(); got != 6*life.VertexStride {
		t.Errorf("VertexByteSize = %d, want %d", got, 6*life.VertexStride)
	}
	if got := dl.IndexByteSize(); got != 8*life.IndexSize {
		t.Errorf("IndexByteSize = %d, want %d", got, 8*life.IndexSize)
	}

	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5}
	for i, idx := range dl.Indices() {
		if idx != want[i] {
			t.Errorf("index %d = %d, want %d", i, idx, want[i])
		}
		if int(idx) >= dl.VertexCount() {
			t.Errorf("index %d = %d out of range", i, idx)
		}
	}

	cmds := dl.Commands()
	if len(cmds) != 2 {
		t.Fatalf("CommandCount = %d, want 2", len(cmds))
	}
	if cmds[1].Primitive != life.Lines || cmds[1].VertexOffset != 4 || cmds[1].IndexOffset != 6 {
		t.Errorf("line command = %+v", cmds[1])
	}
}

func TestDrawListRectVertexOrder(t *testing.T) {
	dl := life.AcquireDrawList()
	defer life.ReleaseDrawList(dl)

	c := life.Color{R: 0.1, G: 0.2, B: 0.3}
	dl.AddRect(life.Vec2{X: 2, Y: 3}, life.Vec2{X: 4, Y: 5}, c)

	v := dl.Vertices()
	corners := [][2]float32{{2, 8}, {2, 3}, {6, 3}, {6, 8}}
	for i, want := range corners {
		o := i * life.FloatsPerVertex
		if v[o] != want[0] || v[o+1] != want[1] {
			t.Errorf("vertex %d = (%v,%v), want %v", i, v[o], v[o+1], want)
		}
		if v[o+2] != c.R || v[o+3] != c.G || v[o+4] != c.B {
			t.Errorf("vertex %d color = %v", i, v[o+2:o+5])
		}
	}
}

func TestVertexLayout(t *testing.T) {
	if got := unsafe.Sizeof(life.Vertex{}); got != life.VertexStride {
		t.Errorf("sizeof(Vertex) = %d, want %d", got, life.VertexStride)
	}
	if got := unsafe.Offsetof(life.Vertex{}.Color); got != life.DefaultLayout.Attributes[1].Offset {
		t.Errorf("color offset = %d, want %d", got, life.DefaultLayout.Attributes[1].Offset)
	}
}

func TestDrawListClear(t *testing.T) {
	dl := life.AcquireDrawList()
	defer life.ReleaseDrawList(dl)

	if !dl.IsEmpty() {
		t.Fatal("acquired list should be empty")
	}
	dl.AddRect(life.Vec2{}, life.Vec2{X: 1, Y: 1}, life.ColorDead)
	if dl.IsEmpty() {
		t.Fatal("list with a rect should not be empty")
	}
	dl.Clear()
	if !dl.IsEmpty() || dl.VertexCount() != 0 || dl.IndexCount() != 0 || dl.CommandCount() != 0 {
		t.Errorf("after Clear: vertices=%d indices=%d cmds=%d", dl.VertexCount(), dl.IndexCount(), dl.CommandCount())
	}

	// Indices restart at zero after a clear.
	dl.AddRect(life.Vec2{}, life.Vec2{X: 1, Y: 1}, life.ColorDead)
	if dl.Indices()[0] != 0 || dl.Indices()[5] != 3 {
		t.Errorf("indices after Clear = %v", dl.Indices())
	}
}

func TestDrawListBatches(t *testing.T) {
	dl := life.AcquireDrawList()
	defer life.ReleaseDrawList(dl)

	for i := 0; i < 3; i++ {
		dl.AddRect(life.Vec2{X: float32(i)}, life.Vec2{X: 1, Y: 1}, life.ColorDead)
	}
	dl.AddLine(life.Vec2{}, life.Vec2{X: 1}, life.ColorMarker)
	dl.AddLine(life.Vec2{}, life.Vec2{Y: 1}, life.ColorMarker)
	dl.AddRect(life.Vec2{}, life.Vec2{X: 1, Y: 1}, life.ColorDead)

	runs := dl.Batches()
	want := []life.DrawCmd{
		{Primitive: life.Triangles, ElemCount: 18, VertexOffset: 0, IndexOffset: 0},
		{Primitive: life.Lines, ElemCount: 4, VertexOffset: 12, IndexOffset: 18},
		{Primitive: life.Triangles, ElemCount: 6, VertexOffset: 16, IndexOffset: 22},
	}
	if len(runs) != len(want) {
		t.Fatalf("Batches = %+v, want %d runs", runs, len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestDrawListAppendRejectsBadIndex(t *testing.T) {
	dl := life.AcquireDrawList()
	defer life.ReleaseDrawList(dl)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for index beyond the command's vertices")
		}
	}()
	dl.Append(life.DrawCommand{
		Vertices:       make([]float32, 2*life.FloatsPerVertex),
		Indices:        []uint32{0, 2},
		VertexCount:    2,
		IndexCount:     2,
		AttributeCount: life.FloatsPerVertex,
		Primitive:      life.Lines,
	})
}

func TestDrawListAppendRejectsLayout(t *testing.T) {
	dl := life.AcquireDrawList()
	defer life.ReleaseDrawList(dl)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong attribute count")
		}
	}()
	dl.Append(life.DrawCommand{
		Vertices:       make([]float32, 8),
		Indices:        []uint32{0, 1},
		VertexCount:    2,
		IndexCount:     2,
		AttributeCount: 4,
		Primitive:      life.Lines,
	})
}

func TestDrawListDoesNotRetainCallerStorage(t *testing.T) {
	dl := life.AcquireDrawList()
	defer life.ReleaseDrawList(dl)

	var s life.Scratch
	dl.Append(life.Rect(&s, life.Vec2{X: 1, Y: 1}, life.Vec2{X: 1, Y: 1}, life.ColorDead))
	for i := range s {
		s[i] = -1
	}
	if dl.Vertices()[0] != 1 {
		t.Errorf("vertex data changed with caller storage: %v", dl.Vertices()[:5])
	}
}

func BenchmarkDrawListGrid(b *testing.B) {
	dl := life.AcquireDrawList()
	defer life.ReleaseDrawList(dl)
	size := life.Vec2{X: 10, Y: 10}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dl.Clear()
		for y := 0; y < life.DefaultGridHeight; y++ {
			for x := 0; x < life.DefaultGridWidth; x++ {
				dl.AddRect(life.Vec2{X: float32(x) * 13, Y: float32(y) * 13}, size, life.ColorDead)
			}
		}
	}
}
