// Package stl converts vertex buffers to STL models and reads and writes
// STL files in ASCII and binary form.
package stl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/geometry"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromBuffer turns every three records into one facet. The facet normal
// is the first record's normal; colors and UVs are dropped.
func FromBuffer(name string, buf vertex.Buffer) *Model {
	model := &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0, buf.TriangleCount()),
	}
	for i := 0; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)
		model.AddTriangle(geometry.NewTriangle(
			geometry.FromVec3(tri[0].Normal),
			geometry.FromVec3(tri[0].Position),
			geometry.FromVec3(tri[1].Position),
			geometry.FromVec3(tri[2].Position),
		))
	}
	return model
}

// ToBuffer expands the model into white records carrying the facet
// normal. A zero facet normal is recomputed from the vertices. UVs are
// zero since STL has none.
func (m *Model) ToBuffer() vertex.Buffer {
	buf := vertex.NewBuffer(len(m.Triangles) * vertex.RecordsPerTriangle)
	for _, t := range m.Triangles {
		n := t.Normal
		if n.Length() == 0 {
			n = t.CalculateNormal()
		}
		normal := n.Vec3()
		rec := func(v geometry.Vector3) vertex.Record {
			return vertex.NewRecord(v.Vec3(), vertex.White, normal, 0, 0)
		}
		buf.AppendTriangle(rec(t.V1), rec(t.V2), rec(t.V3))
	}
	return buf
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		for _, v := range triangle.Vertices() {
			bbox.Extend(v)
		}
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Translate moves every vertex by offset.
func (m *Model) Translate(offset mgl32.Vec3) {
	d := geometry.FromVec3(offset)
	for i, t := range m.Triangles {
		m.Triangles[i] = t.Translate(d)
	}
}
