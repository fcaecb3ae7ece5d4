package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/internal/source"
	"github.com/philipparndt/goprim/pkg/analysis"
	"github.com/philipparndt/goprim/pkg/gpu"
	"github.com/philipparndt/goprim/pkg/gpu/rlgpu"
	"github.com/philipparndt/goprim/pkg/vertex"
	"github.com/philipparndt/goprim/pkg/watcher"
)

// App holds the viewer state. Everything except reloads is touched only
// from the render loop.
type App struct {
	backend   *rlgpu.Backend
	meshes    *gpu.MeshSet
	src       *source.Source
	summaries []analysis.ShapeSummary
	reloads   chan watcher.SceneBuild
	loadError string

	camera         rl.Camera3D
	cameraDistance float32
	cameraAngleX   float32
	cameraAngleY   float32
	cameraTarget   rl.Vector3
	modelCenter    rl.Vector3
	modelSize      float32

	selectedPoints []mgl32.Vec3
	hoveredVertex  *mgl32.Vec3
	mouseDownPos   rl.Vector2
	mouseMoved     bool
	isPanning      bool

	showFilled    bool
	showWireframe bool
	showNormals   bool
	showHelp      bool
}

func newApp(backend *rlgpu.Backend) *App {
	return &App{
		backend:      backend,
		reloads:      make(chan watcher.SceneBuild, 4),
		cameraAngleX: 0.45,
		cameraAngleY: 0.6,
		showFilled:   true,
		showHelp:     true,
		camera: rl.Camera3D{
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       45.0,
			Projection: rl.CameraPerspective,
		},
	}
}

// load uploads src and drops the previous meshes. On error the previous
// meshes stay on screen.
func (app *App) load(src *source.Source) error {
	meshes, err := gpu.Upload(app.backend, src.Shapes)
	if err != nil {
		return err
	}
	app.release()

	firstLoad := app.src == nil
	app.meshes = meshes
	app.src = src
	app.loadError = ""
	app.selectedPoints = nil
	app.hoveredVertex = nil

	app.summaries = make([]analysis.ShapeSummary, len(src.Shapes))
	for i, r := range src.Shapes {
		app.summaries[i] = analysis.Summarize(r)
	}

	if firstLoad {
		app.frame(src.Buffer)
	}
	slog.Debug("Loaded", "source", src.Name, "shapes", len(src.Shapes), "triangles", src.Buffer.TriangleCount())
	return nil
}

// frame points the camera at the center of buf.
func (app *App) frame(buf vertex.Buffer) {
	bbox := analysis.Bounds(buf)
	center := bbox.Center()
	app.modelCenter = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.cameraTarget = app.modelCenter
	app.modelSize = max(float32(bbox.MaxDimension()), 0.1)
	app.cameraDistance = app.modelSize * 2.5
}

func (app *App) release() {
	if app.meshes == nil {
		return
	}
	if err := app.meshes.Release(); err != nil {
		slog.Warn("Releasing meshes failed", "error", err)
	}
	app.meshes = nil
}

// applyReloads uploads the newest finished scene build, if any.
func (app *App) applyReloads() {
	for {
		select {
		case b := <-app.reloads:
			app.applyBuild(b)
		default:
			return
		}
	}
}

func (app *App) applyBuild(b watcher.SceneBuild) {
	if b.Err != nil {
		app.loadError = b.Err.Error()
		slog.Error("Reload failed", "path", b.Path, "error", b.Err)
		return
	}

	name := b.Scene.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(b.Path), filepath.Ext(b.Path))
	}
	src := &source.Source{Name: name, Path: b.Path, Shapes: b.Shapes, Buffer: b.Buffer}
	if err := app.load(src); err != nil {
		app.loadError = err.Error()
		slog.Error("Upload failed", "path", b.Path, "error", err)
	}
}

func (app *App) drawScene() {
	if app.showFilled && app.meshes != nil {
		if err := app.meshes.Draw(); err != nil {
			slog.Error("Draw failed", "error", err)
		}
	}

	buf := app.src.Buffer
	if app.showWireframe {
		for i := 0; i < buf.TriangleCount(); i++ {
			tri := buf.Triangle(i)
			v1, v2, v3 := toRl(tri[0].Position), toRl(tri[1].Position), toRl(tri[2].Position)
			rl.DrawLine3D(v1, v2, rl.White)
			rl.DrawLine3D(v2, v3, rl.White)
			rl.DrawLine3D(v3, v1, rl.White)
		}
	}

	if app.showNormals {
		length := app.modelSize * 0.05
		for i := 0; i < buf.TriangleCount(); i++ {
			tri := buf.Triangle(i)
			center := tri[0].Position.Add(tri[1].Position).Add(tri[2].Position).Mul(1.0 / 3)
			tip := center.Add(tri[0].Normal.Mul(length))
			rl.DrawLine3D(toRl(center), toRl(tip), rl.Orange)
		}
	}

	if app.hoveredVertex != nil {
		rl.DrawSphere(toRl(*app.hoveredVertex), app.modelSize*0.012, rl.NewColor(255, 255, 0, 150))
	}

	markerSize := app.modelSize * 0.01
	for i, point := range app.selectedPoints {
		rl.DrawSphere(toRl(point), markerSize, getPointColor(i))
	}
	if len(app.selectedPoints) == 2 {
		rl.DrawLine3D(toRl(app.selectedPoints[0]), toRl(app.selectedPoints[1]), rl.Yellow)
	}
}

func toRl(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// getPointColor returns a color for a point marker
func getPointColor(index int) rl.Color {
	colors := []rl.Color{rl.Red, rl.Green}
	return colors[index%len(colors)]
}
