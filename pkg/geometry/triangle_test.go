package geometry

import (
	"math"
	"testing"
)

// Faces as the generators emit them for default dimensions.
var (
	planeHalf = NewTriangle(
		NewVector3(0, 1, 0),
		NewVector3(-1, 0, -1),
		NewVector3(-1, 0, 1),
		NewVector3(1, 0, 1),
	)
	pyramidFront = NewTriangle(
		NewVector3(0, 0.894427, -0.447214),
		NewVector3(-1, 0, -1),
		NewVector3(0, 0.5, 0),
		NewVector3(1, 0, -1),
	)
	poleSliver = NewTriangle(
		Vector3{},
		NewVector3(0, 1, 0),
		NewVector3(0, 1, 0),
		NewVector3(0.5, 0.8, 0),
	)
)

func TestTriangleArea(t *testing.T) {
	tests := []struct {
		name     string
		tri      Triangle
		expected float64
	}{
		{"plane half", planeHalf, 2},
		{"pyramid side", pyramidFront, math.Sqrt(1.25)},
		{"pole sliver", poleSliver, 0},
	}

	for _, tt := range tests {
		if got := tt.tri.Area(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("%s: expected area %v, got %v", tt.name, tt.expected, got)
		}
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	n := planeHalf.CalculateNormal()
	if expected := NewVector3(0, 1, 0); !n.ApproxEqual(expected, 1e-12) {
		t.Errorf("plane winding normal: expected %v, got %v", expected, n)
	}
	if n := poleSliver.CalculateNormal(); n != (Vector3{}) {
		t.Errorf("degenerate normal: expected zero, got %v", n)
	}
}

func TestTriangleNormalAgrees(t *testing.T) {
	if !planeHalf.NormalAgrees(0.9999) {
		t.Errorf("plane normal should agree with its winding")
	}

	// inward facing lateral faces store the negated normal
	flipped := planeHalf
	flipped.Normal = NewVector3(0, -1, 0)
	if !flipped.NormalAgrees(0.9999) {
		t.Errorf("flipped normal should agree up to sign")
	}
	if !pyramidFront.NormalAgrees(0.9999) {
		t.Errorf("pyramid normal should agree with its winding")
	}

	tilted := planeHalf
	tilted.Normal = NewVector3(1, 1, 0)
	if tilted.NormalAgrees(0.9999) {
		t.Errorf("45° tilted normal should not agree")
	}
}

func TestTriangleDegenerate(t *testing.T) {
	if !poleSliver.IsDegenerate(1e-12) {
		t.Errorf("pole sliver should be degenerate, area %v", poleSliver.Area())
	}
	if planeHalf.IsDegenerate(1e-12) {
		t.Errorf("plane half should not be degenerate")
	}
}

func TestTriangleEdges(t *testing.T) {
	edges := planeHalf.Edges()
	expected := [3]float64{2, 2, math.Sqrt(8)}
	for i, e := range edges {
		if math.Abs(e.Length()-expected[i]) > 1e-10 {
			t.Errorf("edge %d: expected %v, got %v", i, expected[i], e.Length())
		}
	}
	if edges[2].End != planeHalf.V1 {
		t.Errorf("last edge should close at V1, got %v", edges[2].End)
	}
}

func TestTriangleTranslate(t *testing.T) {
	moved := pyramidFront.Translate(NewVector3(0, 2, 0))
	if moved.V2 != NewVector3(0, 2.5, 0) {
		t.Errorf("apex: expected (0, 2.5, 0), got %v", moved.V2)
	}
	if moved.Normal != pyramidFront.Normal {
		t.Errorf("normal changed: %v", moved.Normal)
	}
	if math.Abs(moved.Area()-pyramidFront.Area()) > 1e-12 {
		t.Errorf("area changed by translation")
	}
}
