package life

import (
	"errors"
	"fmt"
)

// ErrBatchOverflow is returned by Submit when a frame's geometry does not fit
// the GPU buffers allocated for the batch group.
var ErrBatchOverflow = errors.New("life: draw list exceeds batch capacity")

// Buffer is a backend handle for a GPU buffer.
type Buffer uint32

// VertexArray is a backend handle for a vertex array / attribute binding.
// The zero value unbinds.
type VertexArray uint32

// BufferMode is the expected update frequency of a buffer.
type BufferMode uint8

const (
	BufferStatic BufferMode = iota
	BufferDynamic
	BufferStream
)

// VertexAttribute describes one float attribute of the interleaved layout.
type VertexAttribute struct {
	Location   uint32
	Components int32   // Number of floats
	Offset     uintptr // Byte offset inside a vertex
}

// VertexLayout describes how interleaved vertex data maps to attributes.
type VertexLayout struct {
	Stride     int32 // Bytes between consecutive vertices
	Attributes []VertexAttribute
}

// DefaultLayout matches Vertex: position (2 floats at 0), color (3 floats at 8).
var DefaultLayout = VertexLayout{
	Stride: VertexStride,
	Attributes: []VertexAttribute{
		{Location: 0, Components: 2, Offset: 0},
		{Location: 1, Components: 3, Offset: 2 * 4},
	},
}

// Device is the graphics backend boundary. The core never issues graphics
// calls outside of it.
type Device interface {
	CreateVertexBuffer(size int, mode BufferMode) (Buffer, error)
	CreateIndexBuffer(size int, mode BufferMode) (Buffer, error)
	CreateVertexArray(vb, ib Buffer, layout VertexLayout) (VertexArray, error)

	// UpdateVertexBuffer and UpdateIndexBuffer overwrite a sub-range starting
	// at the given byte offset.
	UpdateVertexBuffer(b Buffer, offset int, data []float32)
	UpdateIndexBuffer(b Buffer, offset int, data []uint32)

	BindVertexArray(va VertexArray)
	// DrawIndexed draws count indices starting at index first.
	DrawIndexed(p Primitive, first, count int)

	DeleteBuffer(b Buffer)
	DeleteVertexArray(va VertexArray)
}

// GridCapacity returns the vertex and index capacity needed to draw a w×h
// grid in one batch: a base quad and a border marker per cell in the worst
// case, plus the edit cursor.
func GridCapacity(w, h int) (vertices, indices int) {
	quads := 2*w*h + 1
	return quads * 4, quads * len(quadIndices)
}

// BatchGroup binds a DrawList to fixed-capacity GPU buffers.
type BatchGroup struct {
	dev    Device
	list   *DrawList
	vb, ib Buffer
	va     VertexArray

	maxVertices int
	maxIndices  int
	mode        BufferMode
}

// BatchOption configures a BatchGroup.
type BatchOption func(*BatchGroup)

// WithCapacity sets the vertex and index capacity of the GPU buffers.
func WithCapacity(vertices, indices int) BatchOption {
	return func(b *BatchGroup) {
		b.maxVertices = vertices
		b.maxIndices = indices
	}
}

// WithBufferMode sets the usage mode of the GPU buffers.
func WithBufferMode(mode BufferMode) BatchOption {
	return func(b *BatchGroup) { b.mode = mode }
}

// NewBatchGroup allocates the GPU buffers and vertex array on dev.
// Without WithCapacity the buffers are sized for the default grid.
func NewBatchGroup(dev Device, opts ...BatchOption) (*BatchGroup, error) {
	b := &BatchGroup{dev: dev, mode: BufferDynamic}
	b.maxVertices, b.maxIndices = GridCapacity(DefaultGridWidth, DefaultGridHeight)
	for _, opt := range opts {
		opt(b)
	}

	var err error
	b.vb, err = dev.CreateVertexBuffer(b.maxVertices*VertexStride, b.mode)
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	b.ib, err = dev.CreateIndexBuffer(b.maxIndices*IndexSize, b.mode)
	if err != nil {
		dev.DeleteBuffer(b.vb)
		return nil, fmt.Errorf("create index buffer: %w", err)
	}
	b.va, err = dev.CreateVertexArray(b.vb, b.ib, DefaultLayout)
	if err != nil {
		dev.DeleteBuffer(b.ib)
		dev.DeleteBuffer(b.vb)
		return nil, fmt.Errorf("create vertex array: %w", err)
	}

	b.list = AcquireDrawList()
	logger.Debug("batch group created",
		"vertices", b.maxVertices,
		"indices", b.maxIndices,
		"vertexBytes", b.maxVertices*VertexStride,
		"indexBytes", b.maxIndices*IndexSize)
	return b, nil
}

// List returns the DrawList owned by the batch group.
func (b *BatchGroup) List() *DrawList { return b.list }

// Capacity returns the vertex and index capacity of the GPU buffers.
func (b *BatchGroup) Capacity() (vertices, indices int) {
	return b.maxVertices, b.maxIndices
}

// Clear resets the owned DrawList.
func (b *BatchGroup) Clear() {
	b.list.Clear()
}

// Submit uploads the DrawList into the GPU buffers at offset 0 and draws it.
// One draw is issued per primitive run, which is a single draw for a frame
// of quads.
func (b *BatchGroup) Submit() error {
	if b.list.IsEmpty() {
		return nil
	}
	if b.list.VertexByteSize() > b.maxVertices*VertexStride || b.list.IndexByteSize() > b.maxIndices*IndexSize {
		return fmt.Errorf("%w: %d vertices / %d indices, capacity %d / %d",
			ErrBatchOverflow, b.list.VertexCount(), b.list.IndexCount(), b.maxVertices, b.maxIndices)
	}

	b.dev.UpdateVertexBuffer(b.vb, 0, b.list.Vertices())
	b.dev.UpdateIndexBuffer(b.ib, 0, b.list.Indices())

	b.dev.BindVertexArray(b.va)
	for _, run := range b.list.Batches() {
		b.dev.DrawIndexed(run.Primitive, int(run.IndexOffset), int(run.ElemCount))
	}
	b.dev.BindVertexArray(0)
	return nil
}

// DrawRectImmediate clears the list, draws a single rectangle and submits it.
// Used for overlays that must render after the main batch.
func (b *BatchGroup) DrawRectImmediate(pos, size Vec2, c Color) error {
	b.list.Clear()
	b.list.AddRect(pos, size, c)
	return b.Submit()
}

// Delete releases the GPU objects and returns the DrawList to the pool.
func (b *BatchGroup) Delete() {
	if b.va != 0 {
		b.dev.DeleteVertexArray(b.va)
		b.va = 0
	}
	if b.ib != 0 {
		b.dev.DeleteBuffer(b.ib)
		b.ib = 0
	}
	if b.vb != 0 {
		b.dev.DeleteBuffer(b.vb)
		b.vb = 0
	}
	if b.list != nil {
		ReleaseDrawList(b.list)
		b.list = nil
	}
}
