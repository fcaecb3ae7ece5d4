package gpu

import (
	"fmt"

	"github.com/philipparndt/goprim/pkg/shape"
)

// Mesh ties one shape to its uploaded data. It is not safe for
// concurrent use; call it from the goroutine that owns the graphics
// context.
type Mesh struct {
	shape    shape.Renderable
	backend  Backend
	handle   Handle
	released bool
}

// NewMesh uploads the shape's vertices once.
func NewMesh(b Backend, r shape.Renderable) (*Mesh, error) {
	h, err := b.Upload(r.Vertices())
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", r.Kind(), err)
	}
	return &Mesh{shape: r, backend: b, handle: h}, nil
}

// Draw issues the draw call for the whole triangle list.
func (m *Mesh) Draw() error {
	if m.released {
		return ErrReleased
	}
	return m.backend.Draw(m.handle)
}

// Release frees the backend resources. A second call returns ErrReleased.
func (m *Mesh) Release() error {
	if m.released {
		return ErrReleased
	}
	m.released = true
	return m.backend.Release(m.handle)
}

func (m *Mesh) Handle() Handle          { return m.handle }
func (m *Mesh) Shape() shape.Renderable { return m.shape }
func (m *Mesh) Released() bool          { return m.released }

// MeshSet owns several meshes on one backend.
type MeshSet struct {
	meshes []*Mesh
}

// Upload uploads every shape. On failure the meshes uploaded so far are
// released before the error is returned.
func Upload(b Backend, shapes []shape.Renderable) (*MeshSet, error) {
	set := &MeshSet{}
	for i, r := range shapes {
		m, err := NewMesh(b, r)
		if err != nil {
			_ = set.Release()
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		set.meshes = append(set.meshes, m)
	}
	return set, nil
}

// Draw draws every mesh in order.
func (s *MeshSet) Draw() error {
	for _, m := range s.meshes {
		if err := m.Draw(); err != nil {
			return err
		}
	}
	return nil
}

// Release frees every mesh that is still live and returns the first error.
func (s *MeshSet) Release() error {
	var first error
	for _, m := range s.meshes {
		if m.Released() {
			continue
		}
		if err := m.Release(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *MeshSet) Meshes() []*Mesh { return s.meshes }
