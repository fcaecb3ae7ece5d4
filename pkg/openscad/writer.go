// Package openscad writes generated shapes as OpenSCAD polyhedra so they
// can be combined with hand-written models.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// Polyhedron is one shape reduced to shared points and index faces.
type Polyhedron struct {
	Points []mgl32.Vec3
	Faces  [][3]int
	Color  mgl32.Vec3
}

// NewPolyhedron merges records with equal positions. Faces keep the
// record order of the buffer. Degenerate triangles whose corners merge
// into fewer than three points are dropped.
func NewPolyhedron(buf vertex.Buffer) Polyhedron {
	p := Polyhedron{Color: vertex.White}
	if buf.Len() > 0 {
		p.Color = buf.Record(0).Color
	}

	index := make(map[mgl32.Vec3]int)
	indexOf := func(v mgl32.Vec3) int {
		if i, ok := index[v]; ok {
			return i
		}
		index[v] = len(p.Points)
		p.Points = append(p.Points, v)
		return index[v]
	}

	for i := 0; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)
		face := [3]int{indexOf(tri[0].Position), indexOf(tri[1].Position), indexOf(tri[2].Position)}
		if face[0] == face[1] || face[1] == face[2] || face[0] == face[2] {
			continue
		}
		p.Faces = append(p.Faces, face)
	}
	return p
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatVec(v mgl32.Vec3) string {
	return "[" + formatFloat(v[0]) + ", " + formatFloat(v[1]) + ", " + formatFloat(v[2]) + "]"
}

// WriteTo writes the polyhedron statement.
func (p Polyhedron) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "color(%s)\npolyhedron(\n  points = [\n", formatVec(p.Color))
	for i, pt := range p.Points {
		sep := ","
		if i == len(p.Points)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    %s%s\n", formatVec(pt), sep)
	}
	b.WriteString("  ],\n  faces = [\n")
	for i, f := range p.Faces {
		sep := ","
		if i == len(p.Faces)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    [%d, %d, %d]%s\n", f[0], f[1], f[2], sep)
	}
	b.WriteString("  ]\n);\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Write emits one polyhedron per shape, each preceded by a comment naming
// its kind.
func Write(w io.Writer, name string, shapes []shape.Renderable) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "// %s\n", name)
	}
	for i, r := range shapes {
		fmt.Fprintf(bw, "\n// %d: %s\n", i, r.Kind())
		if _, err := NewPolyhedron(r.Vertices()).WriteTo(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes shapes to a .scad file at path.
func WriteFile(path, name string, shapes []shape.Renderable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(file, name, shapes); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
