// Package gpu hands finished vertex buffers to a graphics backend.
//
// A backend takes a complete buffer once and returns a Handle. The handle
// is drawn as a plain triangle list in record order and must be released
// explicitly; nothing is freed by the garbage collector.
package gpu

import (
	"errors"
	"fmt"

	"github.com/philipparndt/goprim/pkg/vertex"
)

var (
	// ErrInvalidBuffer is returned for an empty buffer or one that does
	// not hold whole triangles.
	ErrInvalidBuffer = errors.New("invalid vertex buffer")
	// ErrReleased is returned when a handle is used after Release.
	ErrReleased = errors.New("handle already released")
)

// Handle identifies uploaded vertex data. ID is the backend's primary
// object (a vertex array for OpenGL), Aux a secondary one (the buffer
// object), or zero when the backend has none.
type Handle struct {
	ID          uint32
	Aux         uint32
	VertexCount int
	Layout      []vertex.Attribute
}

// Triangles returns the number of triangles the handle draws.
func (h Handle) Triangles() int {
	return h.VertexCount / vertex.RecordsPerTriangle
}

// Uploader turns a vertex buffer into a backend handle.
type Uploader interface {
	Upload(buf vertex.Buffer) (Handle, error)
	Release(h Handle) error
}

// Backend is an Uploader that can also issue the draw call.
type Backend interface {
	Uploader
	Draw(h Handle) error
}

// CheckBuffer reports whether buf can be uploaded.
func CheckBuffer(buf vertex.Buffer) error {
	if buf.IsEmpty() {
		return fmt.Errorf("%w: no records", ErrInvalidBuffer)
	}
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBuffer, err)
	}
	return nil
}

// NewHandle fills in the fields every backend shares.
func NewHandle(id, aux uint32, buf vertex.Buffer) Handle {
	return Handle{
		ID:          id,
		Aux:         aux,
		VertexCount: buf.Len(),
		Layout:      vertex.Layout(),
	}
}
