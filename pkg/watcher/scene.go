package watcher

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/philipparndt/goprim/pkg/scene"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// SceneBuild is the outcome of loading and building one scene file.
type SceneBuild struct {
	Path   string
	Scene  *scene.Scene
	Buffer vertex.Buffer
	Shapes []shape.Renderable
	Err    error
}

// BuildScene loads path and builds every shape in it.
func BuildScene(path string) SceneBuild {
	b := SceneBuild{Path: path}
	b.Scene, b.Err = scene.Load(path)
	if b.Err != nil {
		return b
	}
	b.Buffer, b.Shapes, b.Err = b.Scene.Buffer()
	return b
}

// WatchScene builds path once and again after every change, handing each
// result to fn. It blocks until ctx is cancelled. A failed build is passed
// to fn and watching continues.
func WatchScene(ctx context.Context, path string, debounce time.Duration, fn func(SceneBuild)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw, err := NewFileWatcher(debounce)
	if err != nil {
		return err
	}

	// Initial build runs under the callback lock so it cannot interleave
	// with a rebuild triggered by an early change.
	fw.run.Lock()
	if err := fw.Watch([]string{absPath}, func(changed string) {
		fn(BuildScene(changed))
	}); err != nil {
		fw.run.Unlock()
		fw.Close()
		return err
	}
	fw.Start()
	fn(BuildScene(absPath))
	fw.run.Unlock()

	slog.Info("Watching scene", "path", absPath)

	select {
	case <-ctx.Done():
		err := fw.Close()
		<-fw.Done()
		return err
	case <-fw.Done():
		fw.Close()
		return errors.New("watcher stopped unexpectedly")
	}
}
