package analysis

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// NormalReport classifies the stored normals of a vertex buffer.
type NormalReport struct {
	Triangles int
	Unit      int   // triangles whose three normals are unit length
	Zero      int   // triangles carrying a zero normal (degenerate faces)
	NonUnit   []int // triangles with a normal that is neither unit nor zero

	// Orientation relative to the buffer centroid. Triangles whose
	// centroid lies on a plane through the mesh centroid count as neither.
	Outward int
	Inward  int

	// WindingFlipped counts triangles whose stored normal points against
	// the normal implied by their vertex order.
	WindingFlipped int
}

// OK reports whether every normal is unit length or zero.
func (r NormalReport) OK() bool {
	return len(r.NonUnit) == 0
}

// CheckNormals inspects every triangle of buf. tol bounds the accepted
// deviation of a unit normal's length from 1.
func CheckNormals(buf vertex.Buffer, tol float32) NormalReport {
	report := NormalReport{Triangles: buf.TriangleCount()}
	center := centroid(buf)

	for i := 0; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)

		unit, zero := true, false
		for _, r := range tri {
			l := r.Normal.Len()
			switch {
			case l == 0:
				zero = true
				unit = false
			case abs32(l-1) > tol:
				unit = false
			}
		}
		switch {
		case zero:
			report.Zero++
		case unit:
			report.Unit++
		default:
			report.NonUnit = append(report.NonUnit, i)
		}

		n := tri[0].Normal
		mid := tri[0].Position.Add(tri[1].Position).Add(tri[2].Position).Mul(1.0 / 3)
		switch d := n.Dot(mid.Sub(center)); {
		case d > tol:
			report.Outward++
		case d < -tol:
			report.Inward++
		}

		winding := vertex.TriangleNormal(tri[0].Position, tri[2].Position, tri[1].Position)
		if n.Dot(winding) < 0 {
			report.WindingFlipped++
		}
	}
	return report
}

func centroid(buf vertex.Buffer) mgl32.Vec3 {
	if buf.Len() == 0 {
		return mgl32.Vec3{}
	}
	var sum mgl32.Vec3
	for _, r := range buf.Records() {
		sum = sum.Add(r.Position)
	}
	return sum.Mul(1 / float32(buf.Len()))
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
