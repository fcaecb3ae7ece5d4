package shape

import "github.com/go-gl/mathgl/mgl32"

// PlaneParams describes a flat rectangle on the XZ plane centered on
// Position. Width runs along X, Length along Z.
type PlaneParams struct {
	Position mgl32.Vec3
	Width    float32
	Length   float32
}

// DefaultPlaneParams returns a 2×2 plane at the origin.
func DefaultPlaneParams() PlaneParams {
	return PlaneParams{Width: 2, Length: 2}
}

// Plane is two triangles facing +Y.
type Plane struct {
	mesh
	params PlaneParams
}

// NewPlane builds the plane. Zero dimensions give a zero-area quad.
func NewPlane(p PlaneParams, opts ...Option) *Plane {
	o := buildOptions(opts)
	e := newEmitter(o, 6)
	e.horizontalQuad(p.Position, p.Width/2, p.Length/2, p.Position[1], mgl32.Vec3{0, 1, 0})
	return &Plane{mesh: e.finish(p.Position, o), params: p}
}

func (p *Plane) Kind() Kind          { return KindPlane }
func (p *Plane) Params() PlaneParams { return p.params }

// horizontalQuad emits a rectangle at height y spanning ±hx, ±hz around
// center, with UVs covering the unit square. The corner order is shared by
// the plane and the cube's bottom and top faces.
func (e *emitter) horizontalQuad(center mgl32.Vec3, hx, hz, y float32, normal mgl32.Vec3) {
	x0, x1 := center[0]-hx, center[0]+hx
	z0, z1 := center[2]-hz, center[2]+hz

	e.add(mgl32.Vec3{x0, y, z0}, normal, 0, 0)
	e.add(mgl32.Vec3{x0, y, z1}, normal, 0, 1)
	e.add(mgl32.Vec3{x1, y, z1}, normal, 1, 1)

	e.add(mgl32.Vec3{x1, y, z1}, normal, 1, 1)
	e.add(mgl32.Vec3{x1, y, z0}, normal, 1, 0)
	e.add(mgl32.Vec3{x0, y, z0}, normal, 0, 0)
}
