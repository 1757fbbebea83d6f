// Package opengl provides an OpenGL 4.1 backend for the life renderer.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/life"
)

// Device implements life.Device on the current OpenGL context.
// All methods must be called from the thread that owns the context.
type Device struct {
	// Buffer sizes, used to reject out-of-range sub-range updates.
	sizes map[life.Buffer]int
	// Vertex array that owns each element buffer.
	owners map[life.Buffer]uint32
}

// NewDevice returns a device for the current context. gl.Init must have
// been called.
func NewDevice() *Device {
	return &Device{
		sizes:  make(map[life.Buffer]int),
		owners: make(map[life.Buffer]uint32),
	}
}

func usage(mode life.BufferMode) uint32 {
	switch mode {
	case life.BufferStatic:
		return gl.STATIC_DRAW
	case life.BufferStream:
		return gl.STREAM_DRAW
	default:
		return gl.DYNAMIC_DRAW
	}
}

func (d *Device) createBuffer(target uint32, size int, mode life.BufferMode) (life.Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glGenBuffers returned no buffer")
	}
	gl.BindBuffer(target, id)
	gl.BufferData(target, size, nil, usage(mode))
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteBuffers(1, &id)
		return 0, fmt.Errorf("allocate %d byte buffer: gl error 0x%x", size, code)
	}
	gl.BindBuffer(target, 0)

	b := life.Buffer(id)
	d.sizes[b] = size
	return b, nil
}

// CreateVertexBuffer allocates an uninitialized array buffer of size bytes.
func (d *Device) CreateVertexBuffer(size int, mode life.BufferMode) (life.Buffer, error) {
	return d.createBuffer(gl.ARRAY_BUFFER, size, mode)
}

// CreateIndexBuffer allocates an uninitialized element buffer of size bytes.
func (d *Device) CreateIndexBuffer(size int, mode life.BufferMode) (life.Buffer, error) {
	return d.createBuffer(gl.ELEMENT_ARRAY_BUFFER, size, mode)
}

// CreateVertexArray records the attribute layout of vb and binds ib as its
// element buffer.
func (d *Device) CreateVertexArray(vb, ib life.Buffer, layout life.VertexLayout) (life.VertexArray, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glGenVertexArrays returned no vertex array")
	}
	gl.BindVertexArray(id)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(vb))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(ib))

	for _, attr := range layout.Attributes {
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Components, gl.FLOAT, false, layout.Stride, attr.Offset)
		gl.EnableVertexAttribArray(attr.Location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteVertexArrays(1, &id)
		return 0, fmt.Errorf("configure vertex array: gl error 0x%x", code)
	}
	d.owners[ib] = id

	return life.VertexArray(id), nil
}

func (d *Device) checkRange(b life.Buffer, offset, n int) {
	if size, ok := d.sizes[b]; ok && offset+n > size {
		panic(fmt.Sprintf("opengl: update of %d bytes at %d overflows %d byte buffer %d", n, offset, size, b))
	}
}

// UpdateVertexBuffer overwrites part of a vertex buffer.
func (d *Device) UpdateVertexBuffer(b life.Buffer, offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	d.checkRange(b, offset, len(data)*4)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data)*4, gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// UpdateIndexBuffer overwrites part of an index buffer. The element buffer
// binding is vertex array state, so the upload goes through the vertex array
// that owns b and leaves no vertex array bound.
func (d *Device) UpdateIndexBuffer(b life.Buffer, offset int, data []uint32) {
	if len(data) == 0 {
		return
	}
	d.checkRange(b, offset, len(data)*life.IndexSize)
	gl.BindVertexArray(d.owners[b])
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(b))
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, offset, len(data)*life.IndexSize, gl.Ptr(data))
	gl.BindVertexArray(0)
}

// BindVertexArray binds va; 0 unbinds.
func (d *Device) BindVertexArray(va life.VertexArray) {
	gl.BindVertexArray(uint32(va))
}

// DrawIndexed draws count uint32 indices starting at index first from the
// bound vertex array.
func (d *Device) DrawIndexed(p life.Primitive, first, count int) {
	mode := uint32(gl.TRIANGLES)
	if p == life.Lines {
		mode = gl.LINES
	}
	gl.DrawElementsWithOffset(mode, int32(count), gl.UNSIGNED_INT, uintptr(first*life.IndexSize))
}

// DeleteBuffer releases a buffer.
func (d *Device) DeleteBuffer(b life.Buffer) {
	id := uint32(b)
	if id != 0 {
		gl.DeleteBuffers(1, &id)
	}
	delete(d.sizes, b)
}

// DeleteVertexArray releases a vertex array.
func (d *Device) DeleteVertexArray(va life.VertexArray) {
	id := uint32(va)
	if id != 0 {
		gl.DeleteVertexArrays(1, &id)
	}
	for b, owner := range d.owners {
		if owner == id {
			delete(d.owners, b)
		}
	}
}
