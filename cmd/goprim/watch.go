package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/goprim/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchOutput   outputFlags
	watchDebounce = watcher.DefaultDebounce
)

var watchCmd = &cobra.Command{
	Use:   "watch <file.yaml>",
	Short: "Rebuild a scene file whenever it changes",
	Long:  "Build the scene once, then again after every save. Errors are logged and watching continues. Stop with Ctrl-C.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchOutput.stlPath == "" && watchOutput.pngPath == "" && watchOutput.scadPath == "" {
			return errors.New("watch needs --output, --png or --scad")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return watcher.WatchScene(ctx, args[0], watchDebounce, func(b watcher.SceneBuild) {
			if b.Err != nil {
				slog.Error("Scene build failed", "path", b.Path, "error", b.Err)
				return
			}
			name := b.Scene.Name
			if name == "" {
				name = "scene"
			}
			if err := watchOutput.emit(io.Discard, name, b.Buffer, b.Shapes); err != nil {
				slog.Error("Writing output failed", "error", err)
				return
			}
			fmt.Fprintf(os.Stderr, "Rebuilt %s: %d shapes, %d triangles\n", b.Path, len(b.Shapes), b.Buffer.TriangleCount())
		})
	},
}

func init() {
	watchOutput.register(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before rebuilding")
	rootCmd.AddCommand(watchCmd)
}
