package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demo = `
name: demo
shapes:
  - type: plane
    width: 10
    length: 10
  - type: cylinder
    position: [0, 0, 0]
    radius: 1
    height: 2
    sides: 16
    subdivisions: 2
    top: true
    bottom: false
    material: {diffuse: wood.png, specular: wood_spec.png, shininess: 32}
  - type: sphere
    position: [0, 3, 0]
    radius_long: 2
    radius_lat: 1
    semi: true
  - type: cube
    color: [1, 0, 0]
  - type: pyramid
    height: 1
`

func TestParseAndBuild(t *testing.T) {
	s, err := Parse([]byte(demo))
	require.NoError(t, err)
	assert.Equal(t, "demo", s.Name)
	require.Len(t, s.Shapes, 5)

	shapes, err := s.Build()
	require.NoError(t, err)
	require.Len(t, shapes, 5)

	kinds := make([]shape.Kind, len(shapes))
	for i, r := range shapes {
		kinds[i] = r.Kind()
	}
	assert.Equal(t, []shape.Kind{shape.KindPlane, shape.KindCylinder, shape.KindSphere, shape.KindCube, shape.KindPyramid}, kinds)

	plane := shapes[0].(*shape.Plane)
	assert.Equal(t, float32(10), plane.Params().Width)

	cyl := shapes[1].(*shape.Cylinder)
	assert.Equal(t, shape.CylinderParams{Radius: 1, Height: 2, Sides: 16, Subdivisions: 2, Top: true}, cyl.Params())
	assert.Equal(t, 2*16*2+17, cyl.Vertices().TriangleCount())
	require.NotNil(t, cyl.Material())
	assert.Equal(t, float32(32), cyl.Material().Shininess)

	sphere := shapes[2].(*shape.Sphere)
	assert.Equal(t, mgl32.Vec3{0, 3, 0}, sphere.Origin())
	assert.Equal(t, float32(2), sphere.Params().RadiusLong)
	assert.Equal(t, float32(1), sphere.Params().RadiusLat)
	assert.Equal(t, 8, sphere.Params().Sides)
	assert.True(t, sphere.Params().SemiCircle)

	cube := shapes[3].(*shape.Cube)
	assert.Equal(t, shape.DefaultCubeParams(), cube.Params())
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, cube.Vertices().Record(0).Color)

	pyramid := shapes[4].(*shape.Pyramid)
	assert.Equal(t, float32(1), pyramid.Params().Height)
	assert.Equal(t, float32(2), pyramid.Params().Width)
}

func TestBuffer(t *testing.T) {
	s, err := Parse([]byte(demo))
	require.NoError(t, err)

	buf, shapes, err := s.Buffer()
	require.NoError(t, err)

	total := 0
	for _, r := range shapes {
		total += r.Vertices().Len()
	}
	assert.Equal(t, total, buf.Len())
	assert.Equal(t, shapes[0].Vertices().Record(0), buf.Record(0))
}

func TestSphereRadiusShorthand(t *testing.T) {
	r, err := ShapeDef{Type: shape.KindSphere, Radius: ptr(float32(3))}.Build()
	require.NoError(t, err)
	p := r.(*shape.Sphere).Params()
	assert.Equal(t, float32(3), p.RadiusLong)
	assert.Equal(t, float32(3), p.RadiusLat)
}

func TestCapSeamOption(t *testing.T) {
	r, err := ShapeDef{Type: shape.KindCylinder, Sides: ptr(6), CapSeam: ptr(false)}.Build()
	require.NoError(t, err)
	assert.Equal(t, 2*6+2*6, r.Vertices().TriangleCount())
}

func TestBuildErrorsNameTheIndex(t *testing.T) {
	s, err := Parse([]byte("shapes:\n  - type: cube\n  - type: torus\n"))
	require.NoError(t, err)
	_, err = s.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.Contains(t, err.Error(), "shape 1 (torus)")

	s, err = Parse([]byte("shapes:\n  - type: sphere\n    sides: 1\n"))
	require.NoError(t, err)
	_, _, err = s.Buffer()
	assert.ErrorIs(t, err, shape.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "shape 0 (sphere)")
}

func TestDecodeErrors(t *testing.T) {
	_, err := Parse([]byte("shapes:\n  - type: cube\n    colour: [1, 0, 0]\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Parse([]byte("shapes:\n  - type: cube\n    position: [1, 2]\n"))
	assert.Error(t, err)

	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Shapes)
}

func TestLoadAndEncode(t *testing.T) {
	s, err := Parse([]byte(demo))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, s.Encode(&out))

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }
