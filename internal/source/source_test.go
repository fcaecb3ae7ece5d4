package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrimitive(t *testing.T) {
	for _, kind := range shape.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			src, err := Load(string(kind))
			require.NoError(t, err)
			assert.Equal(t, string(kind), src.Name)
			assert.False(t, src.Watchable())
			require.Len(t, src.Shapes, 1)
			assert.Equal(t, kind, src.Shapes[0].Kind())
			assert.Positive(t, src.Buffer.TriangleCount())
		})
	}
}

func TestLoadPrimitiveIgnoresCase(t *testing.T) {
	src, err := Load("Cube")
	require.NoError(t, err)
	assert.Equal(t, shape.KindCube, src.Shapes[0].Kind())
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.yml")
	require.NoError(t, os.WriteFile(path, []byte("shapes:\n  - type: cube\n  - type: plane\n"), 0o644))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pair", src.Name)
	assert.True(t, src.Watchable())
	assert.Len(t, src.Shapes, 2)
	assert.Equal(t, 14, src.Buffer.TriangleCount())
}

func TestLoadSceneBuildError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shapes:\n  - type: cylinder\n    sides: 0\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, shape.ErrInvalidConfig)
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("torus")
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
