package shape

import "github.com/go-gl/mathgl/mgl32"

// CubeParams describes a box whose base is centered on Position and which
// extends Height upward.
type CubeParams struct {
	Position mgl32.Vec3
	Width    float32 // X
	Height   float32 // Y
	Length   float32 // Z
}

// DefaultCubeParams returns a 2×2×2 box at the origin.
func DefaultCubeParams() CubeParams {
	return CubeParams{Width: 2, Height: 2, Length: 2}
}

// Cube is six independently textured faces.
type Cube struct {
	mesh
	params CubeParams
}

// corner of a vertical face: x and z are ±1 multipliers of the half
// extents, top selects the upper edge.
type corner struct {
	x, z float32
	top  bool
	u, v float32
}

// side is one vertical face: its outward normal and two triangles.
type side struct {
	normal  mgl32.Vec3
	corners [6]corner
}

// Faces are emitted bottom, back, -X, front, +X, top.
var cubeSides = [4]side{
	{ // back, +Z
		normal: mgl32.Vec3{0, 0, 1},
		corners: [6]corner{
			{1, 1, false, 0, 0}, {1, 1, true, 0, 1}, {-1, 1, false, 1, 0},
			{-1, 1, false, 1, 0}, {-1, 1, true, 1, 1}, {1, 1, true, 0, 1},
		},
	},
	{ // -X
		normal: mgl32.Vec3{-1, 0, 0},
		corners: [6]corner{
			{-1, -1, false, 0, 0}, {-1, -1, true, 0, 1}, {-1, 1, false, 1, 0},
			{-1, 1, false, 1, 0}, {-1, 1, true, 1, 1}, {-1, -1, true, 0, 1},
		},
	},
	{ // front, -Z
		normal: mgl32.Vec3{0, 0, -1},
		corners: [6]corner{
			{1, -1, false, 0, 0}, {1, -1, true, 0, 1}, {-1, -1, false, 1, 0},
			{-1, -1, false, 1, 0}, {-1, -1, true, 1, 1}, {1, -1, true, 0, 1},
		},
	},
	{ // +X
		normal: mgl32.Vec3{1, 0, 0},
		corners: [6]corner{
			{1, 1, false, 0, 0}, {1, 1, true, 0, 1}, {1, -1, false, 1, 0},
			{1, -1, false, 1, 0}, {1, -1, true, 1, 1}, {1, 1, true, 0, 1},
		},
	},
}

// NewCube builds the box. Negative dimensions mirror it; nothing is
// rejected.
func NewCube(p CubeParams, opts ...Option) *Cube {
	o := buildOptions(opts)
	e := newEmitter(o, 36)

	hx, hz := p.Width/2, p.Length/2
	bottom := p.Position[1]
	top := p.Position[1] + p.Height

	e.horizontalQuad(p.Position, hx, hz, bottom, mgl32.Vec3{0, -1, 0})
	for _, s := range cubeSides {
		for _, c := range s.corners {
			y := bottom
			if c.top {
				y = top
			}
			pos := mgl32.Vec3{p.Position[0] + c.x*hx, y, p.Position[2] + c.z*hz}
			e.add(pos, s.normal, c.u, c.v)
		}
	}
	e.horizontalQuad(p.Position, hx, hz, top, mgl32.Vec3{0, 1, 0})

	return &Cube{mesh: e.finish(p.Position, o), params: p}
}

func (c *Cube) Kind() Kind         { return KindCube }
func (c *Cube) Params() CubeParams { return c.params }
