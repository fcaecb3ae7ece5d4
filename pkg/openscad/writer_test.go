package openscad

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolyhedronCube(t *testing.T) {
	p := NewPolyhedron(shape.NewCube(shape.DefaultCubeParams()).Vertices())
	assert.Len(t, p.Points, 8)
	assert.Len(t, p.Faces, 12)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, p.Color)
}

func TestNewPolyhedronDropsDegenerateFaces(t *testing.T) {
	s, err := shape.NewSphere(mgl32.Vec3{}, 1, 4, false)
	require.NoError(t, err)

	p := NewPolyhedron(s.Vertices())
	assert.Less(t, len(p.Faces), s.Vertices().TriangleCount())
	for _, f := range p.Faces {
		assert.NotEqual(t, f[0], f[1])
		assert.NotEqual(t, f[1], f[2])
		assert.NotEqual(t, f[0], f[2])
	}
}

func TestWrite(t *testing.T) {
	plane := shape.NewPlane(shape.DefaultPlaneParams(), shape.WithColor(mgl32.Vec3{1, 0, 0.5}))

	var out bytes.Buffer
	require.NoError(t, Write(&out, "demo", []shape.Renderable{plane}))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "// demo\n"))
	assert.Contains(t, s, "// 0: plane")
	assert.Contains(t, s, "color([1, 0, 0.5])")
	assert.Contains(t, s, "[-1, 0, -1]")
	assert.Equal(t, 1, strings.Count(s, "polyhedron("))
	assert.True(t, strings.HasSuffix(s, "  ]\n);\n"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.scad")
	cube := shape.NewCube(shape.DefaultCubeParams())
	require.NoError(t, WriteFile(path, "cube", []shape.Renderable{cube}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "faces = [")

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "x.scad"), "x", nil)
	assert.Error(t, err)
}
