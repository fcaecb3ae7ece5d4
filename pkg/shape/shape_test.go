package shape

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/vertex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func mustCylinder(t *testing.T, p CylinderParams, opts ...Option) *Cylinder {
	t.Helper()
	c, err := NewCylinder(p, opts...)
	require.NoError(t, err)
	return c
}

func mustSphere(t *testing.T, p SphereParams, opts ...Option) *Sphere {
	t.Helper()
	s, err := NewEllipsoid(p, opts...)
	require.NoError(t, err)
	return s
}

// assertUnitNormals checks every triangle with a visible area carries a
// unit normal on all three records.
func assertUnitNormals(t *testing.T, buf vertex.Buffer) {
	t.Helper()
	for i := 0; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)
		area := tri[1].Position.Sub(tri[0].Position).Cross(tri[2].Position.Sub(tri[0].Position)).Len() / 2
		if area < 1e-4 {
			continue
		}
		for k, r := range tri {
			assert.InDelta(t, 1.0, float64(r.Normal.Len()), 1e-4, "triangle %d record %d normal %v", i, k, r.Normal)
		}
	}
}

func TestTriangleCounts(t *testing.T) {
	tests := []struct {
		name      string
		build     func(t *testing.T) Renderable
		triangles int
	}{
		{"plane", func(t *testing.T) Renderable { return NewPlane(DefaultPlaneParams()) }, 2},
		{"cube", func(t *testing.T) Renderable { return NewCube(DefaultCubeParams()) }, 12},
		{"pyramid", func(t *testing.T) Renderable { return NewPyramid(DefaultPyramidParams()) }, 6},
		{"cylinder default", func(t *testing.T) Renderable {
			return mustCylinder(t, DefaultCylinderParams())
		}, 2*8*1 + 2*9},
		{"cylinder bands", func(t *testing.T) Renderable {
			return mustCylinder(t, CylinderParams{Radius: 1, Height: 3, Sides: 6, Subdivisions: 3, Top: true})
		}, 2*6*3 + 7},
		{"cylinder no seam", func(t *testing.T) Renderable {
			return mustCylinder(t, CylinderParams{Radius: 1, Height: 1, Sides: 5, Subdivisions: 1, Top: true, Bottom: true}, WithCapSeam(false))
		}, 2*5 + 2*5},
		{"sphere default", func(t *testing.T) Renderable { return mustSphere(t, DefaultSphereParams()) }, 2 * 8 * 7},
		{"sphere semi", func(t *testing.T) Renderable {
			return mustSphere(t, SphereParams{RadiusLong: 1, RadiusLat: 1, Sides: 8, SemiCircle: true})
		}, 2*8*4 + 9},
		{"sphere semi no seam", func(t *testing.T) Renderable {
			return mustSphere(t, SphereParams{RadiusLong: 1, RadiusLat: 1, Sides: 6, SemiCircle: true}, WithCapSeam(false))
		}, 2*6*3 + 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.build(t).Vertices()
			assert.Zero(t, buf.Len()%3)
			assert.NoError(t, buf.Validate())
			assert.Equal(t, tt.triangles, buf.TriangleCount())
			assertUnitNormals(t, buf)
		})
	}
}

func TestPlaneCorners(t *testing.T) {
	p := NewPlane(PlaneParams{Width: 2, Length: 2})
	buf := p.Vertices()
	require.Equal(t, 6, buf.Len())

	corners := map[[2]float32]mgl32.Vec2{}
	for _, r := range buf.Records() {
		assert.Equal(t, float32(0), r.Position[1])
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, r.Normal)
		assert.Equal(t, vertex.White, r.Color)
		assert.Contains(t, []float32{-1, 1}, r.Position[0])
		assert.Contains(t, []float32{-1, 1}, r.Position[2])
		corners[[2]float32{r.Position[0], r.Position[2]}] = r.UV
	}

	assert.Equal(t, map[[2]float32]mgl32.Vec2{
		{-1, -1}: {0, 0},
		{-1, 1}:  {0, 1},
		{1, 1}:   {1, 1},
		{1, -1}:  {1, 0},
	}, corners)
	assert.Equal(t, KindPlane, p.Kind())
}

func TestPlaneOffsetAndDegenerate(t *testing.T) {
	p := NewPlane(PlaneParams{Position: mgl32.Vec3{5, 1, -3}, Width: 0, Length: 4})
	for _, r := range p.Vertices().Records() {
		assert.Equal(t, float32(5), r.Position[0])
		assert.Equal(t, float32(1), r.Position[1])
		assert.Contains(t, []float32{-5, -1}, r.Position[2])
	}
	assert.Equal(t, mgl32.Vec3{5, 1, -3}, p.Origin())
}

func TestCubeFaceNormals(t *testing.T) {
	c := NewCube(CubeParams{Width: 2, Height: 2, Length: 2})
	buf := c.Vertices()
	require.Equal(t, 36, buf.Len())

	center := mgl32.Vec3{0, 1, 0}
	counts := map[mgl32.Vec3]int{}
	for i := 0; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)
		n := tri[0].Normal
		assert.Equal(t, n, tri[1].Normal)
		assert.Equal(t, n, tri[2].Normal)
		assert.InDelta(t, 1.0, float64(n.Len()), eps)

		centroid := tri[0].Position.Add(tri[1].Position).Add(tri[2].Position).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid.Sub(center)), float32(0), "normal %v points inward", n)

		// every record of the face lies on the plane the normal names
		for _, r := range tri {
			assert.InDelta(t, 1.0, float64(n.Dot(r.Position.Sub(center))), eps)
			assert.True(t, r.UV[0] >= 0 && r.UV[0] <= 1 && r.UV[1] >= 0 && r.UV[1] <= 1)
		}
		counts[n] += 3
	}

	assert.Len(t, counts, 6)
	for n, count := range counts {
		assert.Equal(t, 6, count, "normal %v", n)
	}
}

func TestCubeBaseAtPosition(t *testing.T) {
	c := NewCube(CubeParams{Position: mgl32.Vec3{0, 3, 0}, Width: 1, Height: 4, Length: 1})
	minY, maxY := float32(1e9), float32(-1e9)
	for _, r := range c.Vertices().Records() {
		minY = min(minY, r.Position[1])
		maxY = max(maxY, r.Position[1])
	}
	assert.Equal(t, float32(3), minY)
	assert.Equal(t, float32(7), maxY)
}

func TestPyramidApexAndNormals(t *testing.T) {
	p := NewPyramid(PyramidParams{Position: mgl32.Vec3{1, 0, 1}, Width: 2, Length: 2, Height: 1})
	buf := p.Vertices()
	require.Equal(t, 6, buf.TriangleCount())

	apex := p.Apex()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, apex)

	for i := 0; i < 2; i++ {
		for _, r := range buf.Triangle(i) {
			assert.Equal(t, mgl32.Vec3{0, -1, 0}, r.Normal)
		}
	}

	inside := mgl32.Vec3{1, 0.25, 1}
	for i := 2; i < 6; i++ {
		tri := buf.Triangle(i)
		assert.Equal(t, apex, tri[1].Position, "side %d apex", i)
		assert.Equal(t, mgl32.Vec2{0.5, 0.5}, tri[1].UV)

		n := tri[0].Normal
		assert.InDelta(t, 1.0, float64(n.Len()), eps)
		centroid := tri[0].Position.Add(tri[1].Position).Add(tri[2].Position).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid.Sub(inside)), float32(0), "side %d normal %v", i, n)
		assert.Greater(t, n[1], float32(0))
	}
}

func TestCurvedSurfaceNormalsPointInward(t *testing.T) {
	c := mustCylinder(t, CylinderParams{Radius: 1, Height: 2, Sides: 8, Subdivisions: 2})
	buf := c.Vertices()
	for i := 0; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)
		centroid := tri[0].Position.Add(tri[1].Position).Add(tri[2].Position).Mul(1.0 / 3)
		radial := mgl32.Vec3{centroid[0], 0, centroid[2]}
		assert.Less(t, tri[0].Normal.Dot(radial), float32(0), "cylinder triangle %d", i)
	}

	s, err := NewSphere(mgl32.Vec3{}, 1, 8, false)
	require.NoError(t, err)
	buf = s.Vertices()
	checked := 0
	for i := 0; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)
		n := tri[0].Normal
		centroid := tri[0].Position.Add(tri[1].Position).Add(tri[2].Position).Mul(1.0 / 3)
		if n.Len() == 0 || math32.Abs(centroid[1]) > 0.5 {
			continue
		}
		assert.Less(t, n.Dot(centroid), float32(0), "sphere triangle %d", i)
		checked++
	}
	assert.Positive(t, checked)
}

func TestCylinderLateralOnly(t *testing.T) {
	c := mustCylinder(t, CylinderParams{Radius: 1, Height: 1, Sides: 4, Subdivisions: 1})
	buf := c.Vertices()
	assert.Equal(t, 24, buf.Len())

	for _, r := range buf.Records() {
		radius := mgl32.Vec2{r.Position[0], r.Position[2]}.Len()
		assert.InDelta(t, 1.0, float64(radius), eps)
		assert.True(t, r.Position[1] == 0 || r.Position[1] == 1)
		assert.True(t, r.UV[0] >= 0 && r.UV[0] <= 1, "u %v", r.UV[0])
		assert.True(t, r.UV[1] >= 0 && r.UV[1] <= 1, "v %v", r.UV[1])
		assert.InDelta(t, 0.0, float64(r.Normal[1]), eps)
	}
}

func TestCylinderClampsSubdivisions(t *testing.T) {
	c := mustCylinder(t, CylinderParams{Radius: 1, Height: 1, Sides: 3, Subdivisions: -2})
	assert.Equal(t, 1, c.Params().Subdivisions)
	assert.Equal(t, 6, c.Vertices().TriangleCount())
}

func TestCylinderCaps(t *testing.T) {
	p := CylinderParams{Position: mgl32.Vec3{0, 2, 0}, Radius: 1, Height: 3, Sides: 6, Subdivisions: 2, Top: true, Bottom: true}
	c := mustCylinder(t, p)
	buf := c.Vertices()

	lateral := 2 * 6 * 2
	require.Equal(t, lateral+2*7, buf.TriangleCount())

	for i := lateral; i < lateral+7; i++ {
		tri := buf.Triangle(i)
		assert.Equal(t, mgl32.Vec3{0, 2, 0}, tri[0].Position)
		assert.Equal(t, mgl32.Vec2{0, 0}, tri[0].UV)
		for _, r := range tri {
			assert.Equal(t, mgl32.Vec3{0, -1, 0}, r.Normal)
			assert.Equal(t, float32(2), r.Position[1])
			assert.True(t, r.UV[0] >= -1 && r.UV[0] <= 1)
			assert.True(t, r.UV[1] >= -1 && r.UV[1] <= 1)
		}
	}
	for i := lateral + 7; i < buf.TriangleCount(); i++ {
		for _, r := range buf.Triangle(i) {
			assert.Equal(t, mgl32.Vec3{0, 1, 0}, r.Normal)
			assert.Equal(t, float32(5), r.Position[1])
		}
	}

	// closing triangle repeats the first one
	first := buf.Triangle(lateral)
	last := buf.Triangle(lateral + 6)
	for k := range first {
		assert.InDelta(t, float64(first[k].Position[0]), float64(last[k].Position[0]), eps)
		assert.InDelta(t, float64(first[k].Position[2]), float64(last[k].Position[2]), eps)
	}
}

func TestCylinderInvalidSides(t *testing.T) {
	for _, sides := range []int{0, -3} {
		c, err := NewCylinder(CylinderParams{Radius: 1, Height: 1, Sides: sides, Subdivisions: 1})
		assert.Nil(t, c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))

		var cfg *ConfigError
		require.ErrorAs(t, err, &cfg)
		assert.Equal(t, KindCylinder, cfg.Shape)
		assert.Equal(t, "sides", cfg.Field)
		assert.Equal(t, sides, cfg.Value)
		assert.Contains(t, err.Error(), "cylinder: sides must be at least 1")
	}
}

func TestSphereFourSides(t *testing.T) {
	s, err := NewSphere(mgl32.Vec3{}, 1, 4, false)
	require.NoError(t, err)
	assert.Equal(t, 3, s.LatitudeBands())
	assert.Equal(t, 24, s.Vertices().TriangleCount())
}

func TestSpherePointsOnSurface(t *testing.T) {
	p := SphereParams{Position: mgl32.Vec3{1, 2, 3}, RadiusLong: 2, RadiusLat: 0.5, Sides: 10}
	s := mustSphere(t, p)
	for _, r := range s.Vertices().Records() {
		d := r.Position.Sub(p.Position)
		f := (d[0]*d[0]+d[2]*d[2])/(2*2) + (d[1]*d[1])/(0.5*0.5)
		assert.InDelta(t, 1.0, float64(f), 1e-4)
	}
}

func TestSphereFullCoversPoles(t *testing.T) {
	s := mustSphere(t, DefaultSphereParams())
	minY, maxY := float32(1e9), float32(-1e9)
	for _, r := range s.Vertices().Records() {
		minY = min(minY, r.Position[1])
		maxY = max(maxY, r.Position[1])
	}
	assert.InDelta(t, 1.0, float64(maxY), eps)
	assert.InDelta(t, -1.0, float64(minY), eps)
}

func TestSphereSemiCircleCap(t *testing.T) {
	p := SphereParams{RadiusLong: 1.5, RadiusLat: 1, Sides: 8, SemiCircle: true}
	s := mustSphere(t, p)
	buf := s.Vertices()

	lateral := 2 * 8 * 4
	require.Equal(t, lateral+9, buf.TriangleCount())
	for i := lateral; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)
		assert.Equal(t, mgl32.Vec3{}, tri[0].Position)
		for _, r := range tri {
			assert.Equal(t, mgl32.Vec3{0, -1, 0}, r.Normal)
			assert.Equal(t, float32(0), r.Position[1])
		}
		rim := mgl32.Vec2{tri[1].Position[0], tri[1].Position[2]}.Len()
		assert.InDelta(t, 1.5, float64(rim), eps)
	}
}

func TestSphereInvalidSides(t *testing.T) {
	for _, sides := range []int{1, 0, -1} {
		_, err := NewSphere(mgl32.Vec3{}, 1, sides, false)
		assert.ErrorIs(t, err, ErrInvalidConfig, "sides %d", sides)
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	a := mustSphere(t, SphereParams{RadiusLong: 1, RadiusLat: 2, Sides: 12, SemiCircle: true})
	b := mustSphere(t, SphereParams{RadiusLong: 1, RadiusLat: 2, Sides: 12, SemiCircle: true})
	assert.True(t, a.Vertices().Equal(b.Vertices()))

	c1 := mustCylinder(t, DefaultCylinderParams())
	c2 := mustCylinder(t, DefaultCylinderParams())
	assert.True(t, c1.Vertices().Equal(c2.Vertices()))

	assert.True(t, NewCube(DefaultCubeParams()).Vertices().Equal(NewCube(DefaultCubeParams()).Vertices()))
}

func TestOptions(t *testing.T) {
	m := &Material{Diffuse: "wood.png", Specular: "wood_spec.png", Shininess: 32}
	red := mgl32.Vec3{1, 0, 0}
	p := NewPyramid(DefaultPyramidParams(), WithMaterial(m), WithColor(red))

	require.NotNil(t, p.Material())
	assert.NotSame(t, m, p.Material())
	assert.Equal(t, *m, *p.Material())
	assert.True(t, p.Material().HasTextures())
	assert.False(t, p.Material().HasOverlay())

	m.Diffuse = "changed.png"
	assert.Equal(t, "wood.png", p.Material().Diffuse)

	for _, r := range p.Vertices().Records() {
		assert.Equal(t, red, r.Color)
	}

	assert.Nil(t, NewPlane(DefaultPlaneParams()).Material())
	var none *Material
	assert.False(t, none.HasOverlay())
	assert.False(t, none.HasTextures())
	assert.True(t, (&Material{OverlaySpecular: "x.png"}).HasOverlay())
}

func TestVerticesAreIsolated(t *testing.T) {
	c := NewCube(DefaultCubeParams())
	buf := c.Vertices()
	buf.AppendTriangle(vertex.Record{}, vertex.Record{}, vertex.Record{})
	assert.Equal(t, 36, c.Vertices().Len())
}
