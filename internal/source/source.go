// Package source turns a viewer argument into shapes. The argument is
// either a primitive name, which builds that primitive with its defaults,
// or the path of a scene file.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/philipparndt/goprim/pkg/scene"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// ErrUnknownSource is returned for an argument that is neither a
// primitive name nor a scene file.
var ErrUnknownSource = errors.New("not a shape name or scene file")

// Source is a loaded set of shapes.
type Source struct {
	Name string
	// Path is the absolute scene path, empty for a single primitive.
	Path   string
	Shapes []shape.Renderable
	Buffer vertex.Buffer
}

// Watchable reports whether the source comes from a file.
func (s *Source) Watchable() bool {
	return s.Path != ""
}

// IsScenePath reports whether arg names a scene file by its extension.
func IsScenePath(arg string) bool {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load resolves arg.
func Load(arg string) (*Source, error) {
	kind := shape.Kind(strings.ToLower(arg))
	if slices.Contains(shape.Kinds(), kind) {
		r, err := scene.ShapeDef{Type: kind}.Build()
		if err != nil {
			return nil, err
		}
		return &Source{
			Name:   string(kind),
			Shapes: []shape.Renderable{r},
			Buffer: r.Vertices(),
		}, nil
	}

	if !IsScenePath(arg) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, arg)
	}

	path, err := filepath.Abs(arg)
	if err != nil {
		return nil, err
	}
	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	buf, shapes, err := sc.Buffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}

	name := sc.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &Source{Name: name, Path: path, Shapes: shapes, Buffer: buf}, nil
}
