package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goprim/internal/logging"
	"github.com/philipparndt/goprim/internal/source"
	"github.com/philipparndt/goprim/pkg/gpu/rlgpu"
	"github.com/philipparndt/goprim/pkg/watcher"
	"github.com/philipparndt/goprim/version"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	watch        bool
	screenWidth  int32
	screenHeight int32
)

var rootCmd = &cobra.Command{
	Use:   "goprim-view <shape|scene.yaml>",
	Short: "GPU viewer for generated primitives",
	Long: `goprim-view uploads a primitive or every shape of a scene file through
raylib and shows it with an orbit camera. Scene files are reloaded when
they change.`,
	Version:      version.GetFullVersion(),
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&watch, "watch", true, "reload scene files when they change")
	rootCmd.Flags().Int32Var(&screenWidth, "width", 1400, "window width")
	rootCmd.Flags().Int32Var(&screenHeight, "height", 900, "window height")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logging.Setup(verbose)

	src, err := source.Load(args[0])
	if err != nil {
		return err
	}

	if !verbose {
		rl.SetTraceLogLevel(rl.LogWarning)
	}
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(screenWidth, screenHeight, fmt.Sprintf("goprim - %s", src.Name))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	backend := rlgpu.New()
	defer backend.Close()

	app := newApp(backend)
	if err := app.load(src); err != nil {
		return err
	}
	defer app.release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watch && src.Watchable() {
		go func() {
			err := watcher.WatchScene(ctx, src.Path, watcher.DefaultDebounce, func(b watcher.SceneBuild) {
				select {
				case app.reloads <- b:
				case <-ctx.Done():
				}
			})
			if err != nil {
				slog.Error("Watching stopped", "path", src.Path, "error", err)
			}
		}()
	}

	for !rl.WindowShouldClose() {
		app.applyReloads()
		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}
	return nil
}
