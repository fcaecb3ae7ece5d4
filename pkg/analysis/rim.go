package analysis

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/geometry"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// rimTolerance is the height difference under which a record counts as
// lying on the rim.
const rimTolerance = 1e-4

// rimKey quantizes a position so points that differ only by rounding
// collapse to one.
type rimKey [3]int64

func keyOf(p mgl32.Vec3) rimKey {
	var k rimKey
	for i := range k {
		k[i] = int64(math.Round(float64(p[i]) / rimTolerance))
	}
	return k
}

func isCapNormal(n mgl32.Vec3) bool {
	return n[0] == 0 && n[2] == 0 && (n[1] == 1 || n[1] == -1)
}

// RimPoints returns the distinct positions at height y, skipping records
// of flat horizontal faces so cap centers do not pull the fit.
func RimPoints(buf vertex.Buffer, y float32) []geometry.Vector3 {
	seen := make(map[rimKey]bool)
	var points []geometry.Vector3
	for _, r := range buf.Records() {
		if isCapNormal(r.Normal) || abs32(r.Position[1]-y) > rimTolerance {
			continue
		}
		k := keyOf(r.Position)
		if seen[k] {
			continue
		}
		seen[k] = true
		points = append(points, geometry.FromVec3(r.Position))
	}
	return points
}

// FitRim fits a horizontal circle through the rim at height y.
func FitRim(buf vertex.Buffer, y float32) (*geometry.CircleFit, error) {
	points := RimPoints(buf, y)
	fit, err := geometry.FitCircle(points, geometry.AxisY)
	if err != nil {
		return nil, fmt.Errorf("rim at y=%g (%d points): %w", y, len(points), err)
	}
	return fit, nil
}
