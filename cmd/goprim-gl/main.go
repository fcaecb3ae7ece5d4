package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/internal/logging"
	"github.com/philipparndt/goprim/internal/source"
	"github.com/philipparndt/goprim/pkg/analysis"
	"github.com/philipparndt/goprim/pkg/gpu"
	"github.com/philipparndt/goprim/pkg/gpu/glgpu"
	"github.com/philipparndt/goprim/pkg/watcher"
	"github.com/philipparndt/goprim/version"
	"github.com/spf13/cobra"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

var (
	verbose bool
	vsync   bool
)

func init() {
	runtime.LockOSThread()

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&vsync, "vsync", true, "wait for vertical sync")
}

var rootCmd = &cobra.Command{
	Use:          "goprim-gl <shape|scene.yaml>",
	Short:        "OpenGL 4.1 viewer for generated primitives",
	Version:      version.GetFullVersion(),
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// orbit is the camera state driven by mouse input.
type orbit struct {
	target     mgl32.Vec3
	distance   float32
	pitch, yaw float32
	dragging   bool
	lastX      float64
	lastY      float64
}

func (o *orbit) eye() mgl32.Vec3 {
	cp := math32.Cos(o.pitch)
	offset := mgl32.Vec3{
		o.distance * cp * math32.Sin(o.yaw),
		o.distance * math32.Sin(o.pitch),
		o.distance * cp * math32.Cos(o.yaw),
	}
	return o.target.Add(offset)
}

func run(cmd *cobra.Command, args []string) error {
	logging.Setup(verbose)

	src, err := source.Load(args[0])
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "goprim - "+src.Name, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Debug("OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := glgpu.NewProgram()
	if err != nil {
		return err
	}
	defer program.Delete()

	backend := glgpu.New()
	meshes, err := gpu.Upload(backend, src.Shapes)
	if err != nil {
		return err
	}
	defer func() {
		if err := meshes.Release(); err != nil {
			slog.Warn("Releasing meshes failed", "error", err)
		}
	}()

	bbox := analysis.Bounds(src.Buffer)
	cam := &orbit{
		target:   bbox.Center().Vec3(),
		distance: max(float32(bbox.MaxDimension())*2.5, 0.5),
		pitch:    0.45,
		yaw:      0.6,
	}
	wireframe := false
	bindInput(window, cam, &wireframe)

	reloads := make(chan watcher.SceneBuild, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if src.Watchable() {
		go func() {
			err := watcher.WatchScene(ctx, src.Path, watcher.DefaultDebounce, func(b watcher.SceneBuild) {
				select {
				case reloads <- b:
				case <-ctx.Done():
				}
			})
			if err != nil {
				slog.Error("Watching stopped", "path", src.Path, "error", err)
			}
		}()
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(15.0/255, 18.0/255, 25.0/255, 1.0)

	frames := 0
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	for !window.ShouldClose() {
		select {
		case b := <-reloads:
			meshes = reload(backend, meshes, b)
		default:
		}

		fbw, fbh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		if wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}

		aspect := float32(fbw) / float32(max(fbh, 1))
		near := cam.distance * 0.01
		projection := mgl32.Perspective(mgl32.DegToRad(45), aspect, near, cam.distance*100)
		view := mgl32.LookAtV(cam.eye(), cam.target, mgl32.Vec3{0, 1, 0})
		program.Use(projection, view, mgl32.Ident4(), glgpu.DefaultLight)

		if err := meshes.Draw(); err != nil {
			return err
		}

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		select {
		case <-fpsTicker.C:
			window.SetTitle(fmt.Sprintf("goprim - %s (%d fps)", src.Name, frames))
			frames = 0
		default:
		}
	}
	return nil
}

// reload swaps in a rebuilt scene. The old meshes stay when the build or
// upload fails.
func reload(backend gpu.Backend, current *gpu.MeshSet, b watcher.SceneBuild) *gpu.MeshSet {
	if b.Err != nil {
		slog.Error("Reload failed", "path", b.Path, "error", b.Err)
		return current
	}
	next, err := gpu.Upload(backend, b.Shapes)
	if err != nil {
		slog.Error("Upload failed", "path", b.Path, "error", err)
		return current
	}
	if err := current.Release(); err != nil {
		slog.Warn("Releasing meshes failed", "error", err)
	}
	slog.Debug("Reloaded", "path", b.Path, "triangles", b.Buffer.TriangleCount())
	return next
}

func bindInput(window *glfw.Window, cam *orbit, wireframe *bool) {
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		cam.dragging = action == glfw.Press
		cam.lastX, cam.lastY = w.GetCursorPos()
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if !cam.dragging {
			return
		}
		cam.yaw -= float32(x-cam.lastX) * 0.01
		cam.pitch += float32(y-cam.lastY) * 0.01
		cam.pitch = max(-1.5, min(1.5, cam.pitch))
		cam.lastX, cam.lastY = x, y
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cam.distance *= 1 - float32(yoff)*0.05
		cam.distance = max(cam.distance, 0.05)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyW:
			*wireframe = !*wireframe
		}
	})
}
