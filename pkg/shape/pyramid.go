package shape

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// PyramidParams describes a rectangular base centered on Position with the
// apex Height above it.
type PyramidParams struct {
	Position mgl32.Vec3
	Width    float32 // X
	Length   float32 // Z
	Height   float32
}

// DefaultPyramidParams returns a 2×2 base with height 0.5.
func DefaultPyramidParams() PyramidParams {
	return PyramidParams{Width: 2, Length: 2, Height: 0.5}
}

// Pyramid is a two-triangle base and four flat-shaded sides.
type Pyramid struct {
	mesh
	params PyramidParams
}

// NewPyramid builds the pyramid. Side normals come from edge cross
// products and are only approximately what a lit shader expects on steep
// slopes.
func NewPyramid(p PyramidParams, opts ...Option) *Pyramid {
	o := buildOptions(opts)
	e := newEmitter(o, 18)

	hx, hz := p.Width/2, p.Length/2
	x, y, z := p.Position[0], p.Position[1], p.Position[2]

	nn := mgl32.Vec3{x - hx, y, z - hz}
	pn := mgl32.Vec3{x + hx, y, z - hz}
	np := mgl32.Vec3{x - hx, y, z + hz}
	pp := mgl32.Vec3{x + hx, y, z + hz}
	apex := mgl32.Vec3{x, y + p.Height, z}

	down := mgl32.Vec3{0, -1, 0}
	e.add(nn, down, 0, 0)
	e.add(pn, down, 1, 0)
	e.add(np, down, 0, 1)

	e.add(pn, down, 1, 0)
	e.add(pp, down, 1, 1)
	e.add(np, down, 0, 1)

	// Each side runs from a to b through the apex. flip swaps the edge
	// order of the cross product so every side faces out.
	sides := []struct {
		a, b mgl32.Vec3
		flip bool
	}{
		{pp, pn, false}, // +X
		{nn, pn, true},  // -Z
		{nn, np, false}, // -X
		{pp, np, true},  // +Z
	}
	for _, s := range sides {
		e1 := s.b.Sub(s.a)
		e2 := apex.Sub(s.a)
		normal := vertex.FaceNormal(e1, e2)
		if s.flip {
			normal = vertex.FaceNormal(e2, e1)
		}
		e.add(s.a, normal, 0, 0)
		e.add(apex, normal, 0.5, 0.5)
		e.add(s.b, normal, 1, 0)
	}

	return &Pyramid{mesh: e.finish(p.Position, o), params: p}
}

func (p *Pyramid) Kind() Kind            { return KindPyramid }
func (p *Pyramid) Params() PyramidParams { return p.params }

// Apex returns the shared tip of the four sides.
func (p *Pyramid) Apex() mgl32.Vec3 {
	return p.params.Position.Add(mgl32.Vec3{0, p.params.Height, 0})
}
