package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Axis names a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() Vector3 {
	switch a {
	case AxisX:
		return NewVector3(1, 0, 0)
	case AxisY:
		return NewVector3(0, 1, 0)
	}
	return NewVector3(0, 0, 1)
}

var (
	ErrTooFewPoints = errors.New("need at least 3 points to fit a circle")
	ErrCollinear    = errors.New("points are collinear")
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
	StdDev float64 // RMS distance of the points from the circle
}

// project drops the axis coordinate.
func (a Axis) project(p Vector3) (u, v, w float64) {
	switch a {
	case AxisX:
		return p.Y, p.Z, p.X
	case AxisY:
		return p.X, p.Z, p.Y
	}
	return p.X, p.Y, p.Z
}

func (a Axis) unproject(u, v, w float64) Vector3 {
	switch a {
	case AxisX:
		return NewVector3(w, u, v)
	case AxisY:
		return NewVector3(u, w, v)
	}
	return NewVector3(u, v, w)
}

// FitCircle fits a circle to points lying in a plane perpendicular to
// axis, using an algebraic least-squares fit over every point. The plane
// height is the mean axis coordinate.
func FitCircle(points []Vector3, axis Axis) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}
	if axis < AxisX || axis > AxisZ {
		return nil, fmt.Errorf("invalid constraint axis: %d", int(axis))
	}

	n := float64(len(points))
	var mu, mv, mw float64
	for _, p := range points {
		u, v, w := axis.project(p)
		mu += u
		mv += v
		mw += w
	}
	mu, mv, mw = mu/n, mv/n, mw/n

	// Moments around the centroid
	var suu, svv, suv, suuu, svvv, suvv, svuu float64
	for _, p := range points {
		u, v, _ := axis.project(p)
		u -= mu
		v -= mv
		suu += u * u
		svv += v * v
		suv += u * v
		suuu += u * u * u
		svvv += v * v * v
		suvv += u * v * v
		svuu += v * u * u
	}

	det := suu*svv - suv*suv
	scale := (suu + svv) * (suu + svv)
	if scale == 0 || math.Abs(det) < 1e-12*scale {
		return nil, ErrCollinear
	}

	bu := (suuu + suvv) / 2
	bv := (svvv + svuu) / 2
	uc := (bu*svv - bv*suv) / det
	vc := (bv*suu - bu*suv) / det
	radius := math.Sqrt(uc*uc + vc*vc + (suu+svv)/n)

	var sumSq float64
	for _, p := range points {
		u, v, _ := axis.project(p)
		d := math.Hypot(u-mu-uc, v-mv-vc) - radius
		sumSq += d * d
	}

	return &CircleFit{
		Center: axis.unproject(uc+mu, vc+mv, mw),
		Radius: radius,
		Normal: axis.Unit(),
		StdDev: math.Sqrt(sumSq / n),
	}, nil
}
