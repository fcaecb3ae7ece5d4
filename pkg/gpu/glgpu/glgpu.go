// Package glgpu uploads vertex buffers to OpenGL 4.1 core vertex arrays.
// Every call must run on the thread that owns the current GL context.
package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/philipparndt/goprim/pkg/gpu"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// Backend owns the vertex arrays it created.
type Backend struct {
	live map[uint32]uint32 // vao -> vbo
}

// New returns a backend. gl.Init must already have succeeded.
func New() *Backend {
	return &Backend{live: make(map[uint32]uint32)}
}

// Upload copies buf into a static VBO and records the attribute layout in
// a new VAO. The handle's ID is the VAO, Aux the VBO.
func (b *Backend) Upload(buf vertex.Buffer) (gpu.Handle, error) {
	if err := gpu.CheckBuffer(buf); err != nil {
		return gpu.Handle{}, err
	}
	data := buf.Floats()

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*vertex.FloatSize, gl.Ptr(data), gl.STATIC_DRAW)

	for _, attr := range vertex.Layout() {
		gl.EnableVertexAttribArray(attr.Location)
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Size, gl.FLOAT, false, vertex.StrideBytes, uintptr(attr.Offset))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	b.live[vao] = vbo
	return gpu.NewHandle(vao, vbo, buf), nil
}

// Draw draws the handle as a triangle list.
func (b *Backend) Draw(h gpu.Handle) error {
	if _, ok := b.live[h.ID]; !ok {
		return fmt.Errorf("%w: vao %d", gpu.ErrReleased, h.ID)
	}
	gl.BindVertexArray(h.ID)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(h.VertexCount))
	gl.BindVertexArray(0)
	return nil
}

// Release deletes the VBO and VAO.
func (b *Backend) Release(h gpu.Handle) error {
	vbo, ok := b.live[h.ID]
	if !ok {
		return fmt.Errorf("%w: vao %d", gpu.ErrReleased, h.ID)
	}
	delete(b.live, h.ID)

	gl.DeleteBuffers(1, &vbo)
	vao := h.ID
	gl.DeleteVertexArrays(1, &vao)
	return nil
}
