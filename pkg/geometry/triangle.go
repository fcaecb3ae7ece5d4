package geometry

// Triangle is one facet of an exported mesh. Normal is the facet normal
// stored alongside the vertices (STL keeps one per facet).
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// Segment is a directed edge between two points.
type Segment struct {
	Start, End Vector3
}

// Length of the segment
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// Vertices returns the corners in winding order.
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.V1, t.V2, t.V3}
}

// Edges returns V1→V2, V2→V3 and V3→V1.
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{{t.V1, t.V2}, {t.V2, t.V3}, {t.V3, t.V1}}
}

// Translate moves the corners by d. The normal is unchanged.
func (t Triangle) Translate(d Vector3) Triangle {
	return Triangle{Normal: t.Normal, V1: t.V1.Add(d), V2: t.V2.Add(d), V3: t.V3.Add(d)}
}

// CalculateNormal computes the counter-clockwise winding normal from the
// vertex positions, ignoring the stored Normal.
func (t Triangle) CalculateNormal() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2.0
}

// IsDegenerate reports whether the triangle has (near) zero area. Pole
// cells of a sphere and zero-sized shapes produce these.
func (t Triangle) IsDegenerate(eps float64) bool {
	return t.Area() <= eps
}

// NormalAgrees reports whether the cosine between the stored normal and
// the winding normal is at least minCos, ignoring the sign. Lateral faces
// of cylinders and spheres are stored pointing inward.
func (t Triangle) NormalAgrees(minCos float64) bool {
	n := t.Normal.Normalize()
	w := t.CalculateNormal()
	d := n.Dot(w)
	if d < 0 {
		d = -d
	}
	return d >= minCos
}
