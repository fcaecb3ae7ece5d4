package main

import (
	"fmt"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawUI draws the text overlay and the orientation gizmo.
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(20)

	rl.DrawText(fmt.Sprintf("Source: %s", app.src.Name), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Triangles: %d", app.src.Buffer.TriangleCount()), 10, y, 16, rl.White)
	y += lineHeight * 2

	for _, s := range app.summaries {
		m := s.Measurements
		rl.DrawText(fmt.Sprintf("%s: %d triangles, area %.2f", s.Kind, m.TriangleCount, m.SurfaceArea), 10, y, 14, rl.Yellow)
		y += lineHeight
		rl.DrawText(fmt.Sprintf("  size %.2f x %.2f x %.2f", m.Dimensions.X, m.Dimensions.Y, m.Dimensions.Z), 10, y, 14, rl.LightGray)
		y += lineHeight
		n := s.Normals
		rl.DrawText(fmt.Sprintf("  normals %d out / %d in / %d zero", n.Outward, n.Inward, n.Zero), 10, y, 14, rl.LightGray)
		y += lineHeight
	}

	if len(app.selectedPoints) > 0 {
		y += lineHeight
		for i, p := range app.selectedPoints {
			rl.DrawText(fmt.Sprintf("Point %d: (%.3f, %.3f, %.3f)", i+1, p[0], p[1], p[2]), 10, y, 16, getPointColor(i))
			y += lineHeight
		}
		if len(app.selectedPoints) == 2 {
			d := app.selectedPoints[1].Sub(app.selectedPoints[0]).Len()
			rl.DrawText(fmt.Sprintf("Distance: %.4f units", d), 10, y, 18, rl.Yellow)
			y += lineHeight
		}
	}

	if app.loadError != "" {
		y += lineHeight
		rl.DrawText(app.loadError, 10, y, 16, rl.Red)
		y += lineHeight
	}

	if app.showHelp {
		y += lineHeight
		for _, line := range []string{
			"Controls:",
			"  Left Click: Select vertex",
			"  Left Drag: Rotate view",
			"  Alt+Drag: Pan view",
			"  Mouse Wheel: Zoom",
			"  W: Toggle wireframe",
			"  F: Toggle fill",
			"  N: Toggle normals",
			"  C: Clear selection",
			"  R: Recenter",
			"  H: Toggle help",
		} {
			rl.DrawText(line, 10, y, 14, rl.LightGray)
			y += lineHeight
		}
	}

	app.drawAxesGizmo()
	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, int32(rl.GetScreenHeight())-30, 20, rl.Lime)
}

// drawAxesGizmo draws the X, Y and Z axes in the top-right corner, rotated
// with the camera.
func (app *App) drawAxesGizmo() {
	size := float32(40.0)
	origin := rl.Vector2{X: float32(rl.GetScreenWidth()) - size - 40, Y: size + 40}

	cosX := float32(math.Cos(float64(app.cameraAngleX)))
	sinX := float32(math.Sin(float64(app.cameraAngleX)))
	cosY := float32(math.Cos(float64(app.cameraAngleY)))
	sinY := float32(math.Sin(float64(app.cameraAngleY)))

	type axis struct {
		dir   rl.Vector3
		label string
		color rl.Color
		depth float32
		end   rl.Vector2
	}
	axes := []axis{
		{dir: rl.Vector3{X: 1}, label: "X", color: rl.Red},
		{dir: rl.Vector3{Y: 1}, label: "Y", color: rl.Green},
		{dir: rl.Vector3{Z: 1}, label: "Z", color: rl.Blue},
	}
	for i := range axes {
		p, depth := rotateAxis(axes[i].dir, cosX, sinX, cosY, sinY)
		axes[i].depth = depth
		axes[i].end = rl.Vector2{X: origin.X + p.X*size, Y: origin.Y + p.Y*size}
	}

	// Back to front
	sort.Slice(axes, func(i, j int) bool { return axes[i].depth < axes[j].depth })
	for _, a := range axes {
		rl.DrawLineEx(origin, a.end, 2, a.color)
		rl.DrawText(a.label, int32(a.end.X)+4, int32(a.end.Y)-6, 12, a.color)
	}
}

// rotateAxis rotates a direction into the camera frame. The returned
// depth grows toward the viewer.
func rotateAxis(dir rl.Vector3, cosX, sinX, cosY, sinY float32) (rl.Vector2, float32) {
	// Yaw around Y, then pitch around X
	x := dir.X*cosY - dir.Z*sinY
	z := dir.X*sinY + dir.Z*cosY

	y := dir.Y*cosX - z*sinX
	z = dir.Y*sinX + z*cosX

	return rl.Vector2{X: x, Y: -y}, z
}
