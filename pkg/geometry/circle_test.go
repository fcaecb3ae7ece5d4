package geometry

import (
	"errors"
	"math"
	"testing"
)

func circlePoints(center Vector3, radius float64, axis Axis, n int) []Vector3 {
	cu, cv, cw := axis.project(center)
	points := make([]Vector3, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = axis.unproject(cu+radius*math.Cos(a), cv+radius*math.Sin(a), cw)
	}
	return points
}

func TestFitCircleExact(t *testing.T) {
	tests := []struct {
		name   string
		center Vector3
		radius float64
		axis   Axis
	}{
		{"xz plane", NewVector3(1, 2, 3), 2.5, AxisY},
		{"yz plane", NewVector3(-4, 0, 1), 0.5, AxisX},
		{"xy plane", NewVector3(0, 0, 7), 10, AxisZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := FitCircle(circlePoints(tt.center, tt.radius, tt.axis, 8), tt.axis)
			if err != nil {
				t.Fatalf("FitCircle failed: %v", err)
			}
			if !fit.Center.ApproxEqual(tt.center, 1e-9) {
				t.Errorf("Center: expected %v, got %v", tt.center, fit.Center)
			}
			if math.Abs(fit.Radius-tt.radius) > 1e-9 {
				t.Errorf("Radius: expected %v, got %v", tt.radius, fit.Radius)
			}
			if fit.StdDev > 1e-9 {
				t.Errorf("StdDev: expected 0, got %v", fit.StdDev)
			}
			if fit.Normal != tt.axis.Unit() {
				t.Errorf("Normal: expected %v, got %v", tt.axis.Unit(), fit.Normal)
			}
		})
	}
}

func TestFitCircleArc(t *testing.T) {
	all := circlePoints(NewVector3(0, 0, 0), 3, AxisY, 24)
	fit, err := FitCircle(all[:5], AxisY)
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}
	if math.Abs(fit.Radius-3) > 1e-9 {
		t.Errorf("Radius: expected 3, got %v", fit.Radius)
	}
}

func TestFitCircleErrors(t *testing.T) {
	_, err := FitCircle([]Vector3{{}, {X: 1}}, AxisY)
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}

	line := []Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 1), NewVector3(2, 0, 2)}
	_, err = FitCircle(line, AxisY)
	if !errors.Is(err, ErrCollinear) {
		t.Errorf("expected ErrCollinear, got %v", err)
	}

	same := []Vector3{NewVector3(1, 1, 1), NewVector3(1, 1, 1), NewVector3(1, 1, 1)}
	if _, err := FitCircle(same, AxisY); !errors.Is(err, ErrCollinear) {
		t.Errorf("expected ErrCollinear for coincident points, got %v", err)
	}

	if _, err := FitCircle(circlePoints(Vector3{}, 1, AxisY, 4), Axis(5)); err == nil {
		t.Error("expected error for invalid axis")
	}
}

func TestAxisString(t *testing.T) {
	if AxisY.String() != "Y" {
		t.Errorf("expected Y, got %s", AxisY)
	}
}
