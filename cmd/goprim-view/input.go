package main

import (
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// handleInput processes user input
func (app *App) handleInput() {
	altPressed := rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.mouseDownPos = rl.GetMousePosition()
		app.mouseMoved = false
		app.isPanning = altPressed
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.mouseMoved = true
			if app.isPanning {
				app.pan(delta)
			} else {
				app.cameraAngleY += delta.X * 0.01
				app.cameraAngleX -= delta.Y * 0.01
				app.cameraAngleX = max(-1.5, min(1.5, app.cameraAngleX))
			}
		}
	}

	// A release close to the press position is a click
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		dragDistance := rl.Vector2Distance(app.mouseDownPos, rl.GetMousePosition())
		if !app.mouseMoved && !app.isPanning && dragDistance < 5.0 {
			app.selectPoint()
		}
		app.isPanning = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.cameraDistance *= 1.0 - wheel*0.05
		app.cameraDistance = max(app.cameraDistance, app.modelSize*0.1)
	}

	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if v, ok := app.pickVertex(); ok {
			app.hoveredVertex = &v
		} else {
			app.hoveredVertex = nil
		}
	}

	if rl.IsKeyPressed(rl.KeyW) {
		app.showWireframe = !app.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.showFilled = !app.showFilled
	}
	if rl.IsKeyPressed(rl.KeyN) {
		app.showNormals = !app.showNormals
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.showHelp = !app.showHelp
	}
	if rl.IsKeyPressed(rl.KeyC) {
		app.selectedPoints = nil
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.cameraTarget = app.modelCenter
	}
}

// pan moves the camera target in the view plane.
func (app *App) pan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.cameraTarget, app.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	panSpeed := app.cameraDistance * 0.001
	app.cameraTarget = rl.Vector3Add(app.cameraTarget, rl.Vector3Scale(right, -delta.X*panSpeed))
	app.cameraTarget = rl.Vector3Add(app.cameraTarget, rl.Vector3Scale(up, delta.Y*panSpeed))
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	cosX := float32(math.Cos(float64(app.cameraAngleX)))
	x := app.cameraDistance * cosX * float32(math.Sin(float64(app.cameraAngleY)))
	y := app.cameraDistance * float32(math.Sin(float64(app.cameraAngleX)))
	z := app.cameraDistance * cosX * float32(math.Cos(float64(app.cameraAngleY)))

	app.camera.Position = rl.Vector3Add(app.cameraTarget, rl.Vector3{X: x, Y: y, Z: z})
	app.camera.Target = app.cameraTarget
}

// pickVertex finds the vertex closest to the ray under the mouse cursor.
func (app *App) pickVertex() (mgl32.Vec3, bool) {
	if app.src == nil {
		return mgl32.Vec3{}, false
	}
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), app.camera)
	threshold := float64(app.modelSize) * 0.03

	var nearest mgl32.Vec3
	minDist := math.Inf(1)
	seen := make(map[mgl32.Vec3]bool)
	for _, r := range app.src.Buffer.Records() {
		if seen[r.Position] {
			continue
		}
		seen[r.Position] = true

		dist := rayToPointDistance(ray, toRl(r.Position))
		if dist < minDist && dist < threshold {
			minDist = dist
			nearest = r.Position
		}
	}
	return nearest, !math.IsInf(minDist, 1)
}

// selectPoint keeps the last two picked vertices.
func (app *App) selectPoint() {
	v, ok := app.pickVertex()
	if !ok {
		return
	}
	app.selectedPoints = append(app.selectedPoints, v)
	if len(app.selectedPoints) > 2 {
		app.selectedPoints = app.selectedPoints[len(app.selectedPoints)-2:]
	}
	slog.Debug("Selected vertex", "x", v[0], "y", v[1], "z", v[2])
}

// rayToPointDistance calculates distance from ray to point
func rayToPointDistance(ray rl.Ray, point rl.Vector3) float64 {
	toPoint := rl.Vector3Subtract(point, ray.Position)

	t := rl.Vector3DotProduct(toPoint, ray.Direction)
	if t < 0 {
		t = 0
	}

	closest := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	return float64(rl.Vector3Length(rl.Vector3Subtract(point, closest)))
}
