// Package rlgpu uploads vertex buffers as raylib meshes. raylib must have
// an open window before Upload is called.
package rlgpu

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/gpu"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// DefaultLight is the direction used when baking lighting into colors.
var DefaultLight = mgl32.Vec3{-0.5, -1.0, -0.5}

// Backend keeps the meshes it uploaded and draws them with raylib's
// default material.
type Backend struct {
	// BakeLighting multiplies vertex colors by a Lambert term so the
	// default unlit material still shows the shape.
	BakeLighting bool
	Light        mgl32.Vec3
	Transform    rl.Matrix

	material rl.Material
	nextID   uint32
	meshes   map[uint32]*rl.Mesh
}

// New loads the default material. Call Close when done.
func New() *Backend {
	return &Backend{
		BakeLighting: true,
		Light:        DefaultLight,
		Transform:    rl.MatrixIdentity(),
		material:     rl.LoadMaterialDefault(),
		meshes:       make(map[uint32]*rl.Mesh),
	}
}

// Upload splits the interleaved records into raylib's separate arrays and
// uploads them. The handle's Aux is the raylib VAO id.
func (b *Backend) Upload(buf vertex.Buffer) (gpu.Handle, error) {
	if err := gpu.CheckBuffer(buf); err != nil {
		return gpu.Handle{}, err
	}

	a := splitArrays(buf, b.BakeLighting, b.Light)
	mesh := &rl.Mesh{
		VertexCount:   int32(buf.Len()),
		TriangleCount: int32(buf.TriangleCount()),
		Vertices:      &a.vertices[0],
		Normals:       &a.normals[0],
		Texcoords:     &a.texcoords[0],
		Colors:        &a.colors[0],
	}

	// Upload mesh data to GPU
	rl.UploadMesh(mesh, false)

	b.nextID++
	b.meshes[b.nextID] = mesh
	return gpu.NewHandle(b.nextID, mesh.VaoID, buf), nil
}

// Draw draws the mesh with the backend transform.
func (b *Backend) Draw(h gpu.Handle) error {
	mesh, ok := b.meshes[h.ID]
	if !ok {
		return fmt.Errorf("%w: mesh %d", gpu.ErrReleased, h.ID)
	}
	rl.DrawMesh(*mesh, b.material, b.Transform)
	return nil
}

// Release unloads the mesh.
func (b *Backend) Release(h gpu.Handle) error {
	mesh, ok := b.meshes[h.ID]
	if !ok {
		return fmt.Errorf("%w: mesh %d", gpu.ErrReleased, h.ID)
	}
	delete(b.meshes, h.ID)
	rl.UnloadMesh(mesh)
	return nil
}

// Mesh returns the raylib mesh for a live handle.
func (b *Backend) Mesh(h gpu.Handle) (rl.Mesh, bool) {
	mesh, ok := b.meshes[h.ID]
	if !ok {
		return rl.Mesh{}, false
	}
	return *mesh, true
}

// Close releases every remaining mesh and the material.
func (b *Backend) Close() {
	for id, mesh := range b.meshes {
		rl.UnloadMesh(mesh)
		delete(b.meshes, id)
	}
	rl.UnloadMaterial(b.material)
}

type arrays struct {
	vertices  []float32
	normals   []float32
	texcoords []float32
	colors    []uint8
}

// splitArrays converts interleaved records into per-attribute arrays.
// Colors become RGBA bytes.
func splitArrays(buf vertex.Buffer, bake bool, light mgl32.Vec3) arrays {
	n := buf.Len()
	a := arrays{
		vertices:  make([]float32, n*3),
		normals:   make([]float32, n*3),
		texcoords: make([]float32, n*2),
		colors:    make([]uint8, n*4),
	}
	lightDir := light.Normalize()

	for i, r := range buf.Records() {
		copy(a.vertices[i*3:], r.Position[:])
		copy(a.normals[i*3:], r.Normal[:])
		copy(a.texcoords[i*2:], r.UV[:])

		// Min 30% ambient; abs() so inward-facing normals still light
		intensity := float32(1)
		if bake {
			intensity = float32(math.Max(0.3, math.Abs(float64(r.Normal.Dot(lightDir)))))
		}
		for c := 0; c < 3; c++ {
			a.colors[i*4+c] = toByte(r.Color[c] * intensity)
		}
		a.colors[i*4+3] = 255
	}
	return a
}

func toByte(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
