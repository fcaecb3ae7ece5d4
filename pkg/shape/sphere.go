package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// SphereParams describes a sphere or ellipsoid centered on Position.
// RadiusLong scales X and Z, RadiusLat scales Y.
type SphereParams struct {
	Position   mgl32.Vec3
	RadiusLong float32
	RadiusLat  float32
	Sides      int  // longitude sectors and latitude resolution, at least 2
	SemiCircle bool // keep the upper half and close it with a flat cap
}

// DefaultSphereParams returns a unit sphere with eight sides.
func DefaultSphereParams() SphereParams {
	return SphereParams{RadiusLong: 1, RadiusLat: 1, Sides: 8}
}

// Sphere is a latitude/longitude tessellated sphere.
type Sphere struct {
	mesh
	params SphereParams
}

// NewSphere builds a sphere with one radius on every axis.
func NewSphere(position mgl32.Vec3, radius float32, sides int, semiCircle bool, opts ...Option) (*Sphere, error) {
	return NewEllipsoid(SphereParams{
		Position:   position,
		RadiusLong: radius,
		RadiusLat:  radius,
		Sides:      sides,
		SemiCircle: semiCircle,
	}, opts...)
}

// NewEllipsoid validates p and builds the shape. The polar angle is sampled
// every π/(Sides-1); a full sphere uses Sides-1 bands, a semi-circle uses
// Sides/2 bands at the same spacing plus a cap fan on the cut plane.
// Surface normals point toward the center, not outward, and cells touching
// a pole may carry a zero normal. The cut-plane cap faces (0,-1,0).
func NewEllipsoid(p SphereParams, opts ...Option) (*Sphere, error) {
	if p.Sides < 2 {
		return nil, &ConfigError{Shape: KindSphere, Field: "sides", Value: p.Sides, Min: 2}
	}

	o := buildOptions(opts)
	e := newEmitter(o, 3*sphereTriangles(p, o.capSeam))

	sides := p.Sides
	bands := latitudeBands(p)
	du := 1 / float32(sides-1)
	dv := 1 / float32(sides)

	for i := 0; i < bands; i++ {
		phi1 := math32.Pi * float32(i) / float32(sides-1)
		phi2 := math32.Pi * float32(i+1) / float32(sides-1)
		v1 := dv * float32(i)
		v2 := dv * float32(i+1)

		for j := 0; j < sides; j++ {
			theta1 := 2 * math32.Pi * float32(j) / float32(sides)
			theta2 := 2 * math32.Pi * float32(j+1) / float32(sides)
			u1 := 1 - du*float32(j)
			u2 := 1 - du*float32(j+1)

			a := p.point(phi1, theta1)
			b := p.point(phi1, theta2)
			c := p.point(phi2, theta1)
			d := p.point(phi2, theta2)

			n := vertex.TriangleNormal(a, b, c)
			e.add(a, n, u1, v1)
			e.add(b, n, u2, v1)
			e.add(c, n, u1, v2)

			n = vertex.TriangleNormal(d, c, b)
			e.add(b, n, u2, v1)
			e.add(d, n, u2, v2)
			e.add(c, n, u1, v2)
		}
	}

	if p.SemiCircle {
		e.capFan(p.Position, p.RadiusLong, sides, mgl32.Vec3{0, -1, 0}, o.capSeam)
	}

	return &Sphere{mesh: e.finish(p.Position, o), params: p}, nil
}

// point converts polar angle phi (from +Y) and azimuth theta to a position.
func (p SphereParams) point(phi, theta float32) mgl32.Vec3 {
	sinPhi := math32.Sin(phi)
	return mgl32.Vec3{
		p.Position[0] + p.RadiusLong*sinPhi*math32.Cos(theta),
		p.Position[1] + p.RadiusLat*math32.Cos(phi),
		p.Position[2] + p.RadiusLong*sinPhi*math32.Sin(theta),
	}
}

func latitudeBands(p SphereParams) int {
	if p.SemiCircle {
		return p.Sides / 2
	}
	return p.Sides - 1
}

func sphereTriangles(p SphereParams, seam bool) int {
	n := 2 * p.Sides * latitudeBands(p)
	if p.SemiCircle {
		n += fanTriangles(p.Sides, seam)
	}
	return n
}

func (s *Sphere) Kind() Kind           { return KindSphere }
func (s *Sphere) Params() SphereParams { return s.params }

// LatitudeBands returns how many polar bands were generated.
func (s *Sphere) LatitudeBands() int { return latitudeBands(s.params) }
