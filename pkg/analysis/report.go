package analysis

import (
	"fmt"
	"io"

	"github.com/philipparndt/goprim/pkg/geometry"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/philipparndt/goprim/pkg/stl"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// normalTolerance is the accepted deviation of a unit normal's length.
const normalTolerance = 1e-4

// ShapeSummary describes one generated shape.
type ShapeSummary struct {
	Kind         shape.Kind
	Records      int
	Measurements *MeasurementResult
	Normals      NormalReport
	Material     *shape.Material
}

// Bounds returns the bounding box of every position in buf.
func Bounds(buf vertex.Buffer) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, r := range buf.Records() {
		bbox.Extend(geometry.FromVec3(r.Position))
	}
	return bbox
}

// Summarize measures a shape's vertex buffer.
func Summarize(r shape.Renderable) ShapeSummary {
	buf := r.Vertices()
	return ShapeSummary{
		Kind:         r.Kind(),
		Records:      buf.Len(),
		Measurements: AnalyzeModel(stl.FromBuffer(string(r.Kind()), buf)),
		Normals:      CheckNormals(buf, normalTolerance),
		Material:     r.Material(),
	}
}

// Print writes a human readable report.
func (s ShapeSummary) Print(w io.Writer) {
	m := s.Measurements

	fmt.Fprintf(w, "Shape: %s\n", s.Kind)
	fmt.Fprintf(w, "  Records: %d\n", s.Records)
	fmt.Fprintf(w, "  Triangles: %d\n", m.TriangleCount)
	if m.DegenerateCount > 0 {
		fmt.Fprintf(w, "  Degenerate: %d\n", m.DegenerateCount)
	}
	fmt.Fprintf(w, "  Surface Area: %.6f square units\n", m.SurfaceArea)
	fmt.Fprintf(w, "  Min: %s\n", FormatVector(m.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", FormatVector(m.BoundingBox.Max))
	fmt.Fprintf(w, "  Size: %s\n", FormatVector(m.Dimensions))

	n := s.Normals
	fmt.Fprintf(w, "  Normals: %d unit, %d zero, %d other\n", n.Unit, n.Zero, len(n.NonUnit))
	fmt.Fprintf(w, "  Facing: %d outward, %d inward\n", n.Outward, n.Inward)

	if s.Material != nil {
		fmt.Fprintf(w, "  Material: diffuse=%q specular=%q", s.Material.Diffuse, s.Material.Specular)
		if s.Material.HasOverlay() {
			fmt.Fprintf(w, " overlay=%q/%q", s.Material.OverlayDiffuse, s.Material.OverlaySpecular)
		}
		fmt.Fprintln(w)
	}
}
