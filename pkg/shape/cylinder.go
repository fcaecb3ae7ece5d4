package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// CylinderParams describes an upright cylinder whose bottom cap is centered
// on Position.
type CylinderParams struct {
	Position     mgl32.Vec3
	Radius       float32
	Height       float32
	Sides        int  // angular sectors, at least 1
	Subdivisions int  // vertical bands; values below 1 are treated as 1
	Top          bool // emit the top cap
	Bottom       bool // emit the bottom cap
}

// DefaultCylinderParams returns radius 2, height 2, eight sides, one band
// and both caps.
func DefaultCylinderParams() CylinderParams {
	return CylinderParams{Radius: 2, Height: 2, Sides: 8, Subdivisions: 1, Top: true, Bottom: true}
}

// Cylinder is a faceted tube with optional flat caps.
type Cylinder struct {
	mesh
	params CylinderParams
}

// NewCylinder validates p and builds the cylinder. The lateral surface has
// 2·Sides·Subdivisions triangles, each with its own flat normal. Lateral
// normals point toward the axis, not outward; cap normals point away from
// the body. Light the sides with |n·l| or negate their normals.
func NewCylinder(p CylinderParams, opts ...Option) (*Cylinder, error) {
	if p.Sides < 1 {
		return nil, &ConfigError{Shape: KindCylinder, Field: "sides", Value: p.Sides, Min: 1}
	}
	if p.Subdivisions < 1 {
		p.Subdivisions = 1
	}

	o := buildOptions(opts)
	e := newEmitter(o, 3*cylinderTriangles(p, o.capSeam))

	sides, bands := p.Sides, p.Subdivisions
	x, y, z := p.Position[0], p.Position[1], p.Position[2]
	du := 1 / float32(sides)
	dv := 1 / float32(bands)
	bandHeight := p.Height / float32(bands)

	for i := 0; i < sides; i++ {
		theta1 := 2 * math32.Pi * float32(i) / float32(sides)
		theta2 := 2 * math32.Pi * float32(i+1) / float32(sides)

		x1, z1 := x+p.Radius*math32.Cos(theta1), z+p.Radius*math32.Sin(theta1)
		x2, z2 := x+p.Radius*math32.Cos(theta2), z+p.Radius*math32.Sin(theta2)

		u1 := 1 - du*float32(i)
		u2 := 1 - du*float32(i+1)

		for j := 0; j < bands; j++ {
			btm := y + bandHeight*float32(j)
			top := y + bandHeight*float32(j+1)
			v1 := dv * float32(j)
			v2 := dv * float32(j+1)

			a := mgl32.Vec3{x1, btm, z1}
			b := mgl32.Vec3{x1, top, z1}
			c := mgl32.Vec3{x2, top, z2}
			n := vertex.TriangleNormal(a, b, c)
			e.add(a, n, u1, v1)
			e.add(b, n, u1, v2)
			e.add(c, n, u2, v2)

			d := mgl32.Vec3{x2, btm, z2}
			n = vertex.TriangleNormal(c, d, a)
			e.add(c, n, u2, v2)
			e.add(d, n, u2, v1)
			e.add(a, n, u1, v1)
		}
	}

	if p.Bottom {
		e.capFan(p.Position, p.Radius, sides, mgl32.Vec3{0, -1, 0}, o.capSeam)
	}
	if p.Top {
		e.capFan(mgl32.Vec3{x, y + p.Height, z}, p.Radius, sides, mgl32.Vec3{0, 1, 0}, o.capSeam)
	}

	return &Cylinder{mesh: e.finish(p.Position, o), params: p}, nil
}

func cylinderTriangles(p CylinderParams, seam bool) int {
	n := 2 * p.Sides * p.Subdivisions
	if p.Bottom {
		n += fanTriangles(p.Sides, seam)
	}
	if p.Top {
		n += fanTriangles(p.Sides, seam)
	}
	return n
}

func (c *Cylinder) Kind() Kind { return KindCylinder }

// Params returns the parameters after clamping.
func (c *Cylinder) Params() CylinderParams { return c.params }
