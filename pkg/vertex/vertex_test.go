package vertex

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTriangle() (Record, Record, Record) {
	n := mgl32.Vec3{0, 1, 0}
	return NewRecord(mgl32.Vec3{0, 0, 0}, White, n, 0, 0),
		NewRecord(mgl32.Vec3{0, 0, 1}, White, n, 0, 1),
		NewRecord(mgl32.Vec3{1, 0, 1}, White, n, 1, 1)
}

func TestLayoutOffsets(t *testing.T) {
	attrs := Layout()
	require.Len(t, attrs, 4)

	want := []struct {
		name   string
		size   int32
		offset int
	}{
		{"position", 3, 0},
		{"color", 3, 12},
		{"normal", 3, 24},
		{"uv", 2, 36},
	}
	total := 0
	for i, w := range want {
		assert.Equal(t, w.name, attrs[i].Name)
		assert.Equal(t, uint32(i), attrs[i].Location)
		assert.Equal(t, w.size, attrs[i].Size)
		assert.Equal(t, w.offset, attrs[i].Offset)
		total += int(attrs[i].Size)
	}
	assert.Equal(t, Stride, total)
	assert.Equal(t, 44, StrideBytes)
}

func TestLayoutReturnsCopy(t *testing.T) {
	attrs := Layout()
	attrs[0].Name = "changed"
	assert.Equal(t, "position", Layout()[0].Name)
}

func TestBufferAppendAndDecode(t *testing.T) {
	var b Buffer
	r1, r2, r3 := sampleTriangle()
	b.AppendTriangle(r1, r2, r3)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 1, b.TriangleCount())
	assert.Len(t, b.Floats(), 33)
	assert.Equal(t, r2, b.Record(1))
	assert.Equal(t, [3]Record{r1, r2, r3}, b.Triangle(0))
	assert.NoError(t, b.Validate())
}

func TestBufferPartialTriangle(t *testing.T) {
	var b Buffer
	r1, _, _ := sampleTriangle()
	b.Append(r1)

	err := b.Validate()
	assert.ErrorIs(t, err, ErrPartialTriangle)

	_, err = FromFloats(make([]float32, Stride))
	assert.ErrorIs(t, err, ErrPartialTriangle)
}

func TestBufferBytesLittleEndian(t *testing.T) {
	var b Buffer
	r1, r2, r3 := sampleTriangle()
	b.AppendTriangle(r1, r2, r3)

	raw := b.Bytes()
	require.Len(t, raw, 3*StrideBytes)

	// second record, z of position
	z := math.Float32frombits(binary.LittleEndian.Uint32(raw[StrideBytes+2*FloatSize:]))
	assert.Equal(t, float32(1), z)
	// third record, u
	u := math.Float32frombits(binary.LittleEndian.Uint32(raw[2*StrideBytes+36:]))
	assert.Equal(t, float32(1), u)
}

func TestFromFloatsCopies(t *testing.T) {
	var b Buffer
	r1, r2, r3 := sampleTriangle()
	b.AppendTriangle(r1, r2, r3)

	data := b.Floats()
	c, err := FromFloats(data)
	require.NoError(t, err)
	data[0] = 42
	assert.True(t, b.Equal(c))
}

func TestFreezeIsolatesAppends(t *testing.T) {
	b := NewBuffer(6)
	r1, r2, r3 := sampleTriangle()
	b.AppendTriangle(r1, r2, r3)

	frozen := b.Freeze()
	other := frozen
	other.AppendTriangle(r3, r2, r1)
	b.AppendTriangle(r1, r1, r1)

	assert.Equal(t, 3, frozen.Len())
	assert.Equal(t, r3, other.Record(3))
}

func TestConcat(t *testing.T) {
	var a, b Buffer
	r1, r2, r3 := sampleTriangle()
	a.AppendTriangle(r1, r2, r3)
	b.AppendTriangle(r3, r2, r1)

	c := Concat(a, b)
	assert.Equal(t, 2, c.TriangleCount())
	assert.Equal(t, r3, c.Record(3))
	assert.Equal(t, 0, Concat().Len())
}

func TestClone(t *testing.T) {
	var b Buffer
	assert.True(t, b.IsEmpty())

	r1, r2, r3 := sampleTriangle()
	b.AppendTriangle(r1, r2, r3)
	c := b.Clone()
	b.AppendTriangle(r1, r2, r3)

	assert.False(t, c.IsEmpty())
	assert.Equal(t, 1, c.TriangleCount())
	assert.True(t, c.Equal(Concat(c)))
	assert.False(t, c.Equal(b))
}

func TestFaceNormal(t *testing.T) {
	n := FaceNormal(mgl32.Vec3{2, 0, 0}, mgl32.Vec3{0, 3, 0})
	assert.InDelta(t, 1.0, float64(n.Len()), 1e-6)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, n)

	assert.Equal(t, mgl32.Vec3{}, FaceNormal(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 2, 2}))
}

func TestTriangleNormalEdgeOrder(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{1, 0, 0}
	c := mgl32.Vec3{0, 0, 1}
	// (c-a) x (b-a) = z x x = y
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, TriangleNormal(a, b, c))
}
