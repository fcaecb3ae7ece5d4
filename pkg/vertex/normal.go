package vertex

import "github.com/go-gl/mathgl/mgl32"

// FaceNormal returns the unit vector along e1 × e2. Parallel or zero edges
// yield the zero vector instead of NaN.
func FaceNormal(e1, e2 mgl32.Vec3) mgl32.Vec3 {
	n := e1.Cross(e2)
	l := n.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return n.Mul(1 / l)
}

// TriangleNormal returns FaceNormal(c-a, b-a): the first edge runs from a
// to c and the second from a to b.
func TriangleNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return FaceNormal(c.Sub(a), b.Sub(a))
}
