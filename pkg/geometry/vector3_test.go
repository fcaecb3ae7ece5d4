package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVector3Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector3
		expected Vector3
	}{
		{"add", NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6)), NewVector3(5, 7, 9)},
		{"sub", NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3)), NewVector3(4, 5, 6)},
		{"mul", NewVector3(1, -2, 0.5).Mul(2), NewVector3(2, -4, 1)},
		{"min", NewVector3(1, -2, 3).Min(NewVector3(0, 5, 3)), NewVector3(0, -2, 3)},
		{"max", NewVector3(1, -2, 3).Max(NewVector3(0, 5, 3)), NewVector3(1, 5, 3)},
		// x × y = z keeps the generators right handed
		{"cross xy", NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)), NewVector3(0, 0, 1)},
		{"cross zx", NewVector3(0, 0, 1).Cross(NewVector3(1, 0, 0)), NewVector3(0, 1, 0)},
		{"cross parallel", NewVector3(2, 0, 0).Cross(NewVector3(-1, 0, 0)), Vector3{}},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, tt.got)
		}
	}
}

func TestVector3Length(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"length", NewVector3(3, 4, 0).Length(), 5},
		{"distance", NewVector3(1, 1, 1).Distance(NewVector3(1, 4, 5)), 5},
		{"dot", NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6)), 32},
		{"normalized", NewVector3(0, -7, 0).Normalize().Length(), 1},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.expected) > 1e-10 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, tt.got)
		}
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Errorf("Normalize of zero vector: expected zero, got %v", got)
	}
}

func TestVector3Float32Bridge(t *testing.T) {
	record := mgl32.Vec3{1.5, -2, 0.25}
	v := FromVec3(record)
	if expected := NewVector3(1.5, -2, 0.25); v != expected {
		t.Errorf("FromVec3 failed: expected %v, got %v", expected, v)
	}
	if back := v.Vec3(); back != record {
		t.Errorf("Vec3 failed: expected %v, got %v", record, back)
	}

	// float32 positions such as sin(π/4) widen with their rounding error
	f := float32(math.Sqrt2 / 2)
	w := FromVec3(mgl32.Vec3{f, 0, 0})
	if w.X == math.Sqrt2/2 {
		t.Errorf("expected float32 rounding to survive widening")
	}
	if !w.ApproxEqual(NewVector3(math.Sqrt2/2, 0, 0), 1e-7) {
		t.Errorf("widened value %v too far from %v", w.X, math.Sqrt2/2)
	}
}

func TestVector3ApproxEqual(t *testing.T) {
	a := NewVector3(1, 1, 1)
	if !a.ApproxEqual(NewVector3(1+1e-7, 1, 1-1e-7), 1e-6) {
		t.Errorf("ApproxEqual: expected match within 1e-6")
	}
	if a.ApproxEqual(NewVector3(1, 1.1, 1), 1e-6) {
		t.Errorf("ApproxEqual: expected mismatch")
	}
}
