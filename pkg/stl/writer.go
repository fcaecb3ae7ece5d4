package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goprim/pkg/geometry"
)

// WriteASCII writes m as an ASCII STL document.
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	name := strings.TrimSpace(m.Name)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVector(t.Normal))
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range t.Vertices() {
			fmt.Fprintf(bw, "      vertex %s\n", formatVector(v))
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	return bw.Flush()
}

// formatVector prints the shortest form that reads back to the same
// float32 values.
func formatVector(v geometry.Vector3) string {
	f := func(x float64) string { return strconv.FormatFloat(float64(float32(x)), 'e', -1, 32) }
	return f(v.X) + " " + f(v.Y) + " " + f(v.Z)
}

func fromVector(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// WriteBinary writes m as a binary STL document. Names longer than the
// 80-byte header are truncated.
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, binaryHeaderSize)
	copy(header, m.Name)
	if _, err := bw.Write(header); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}
	for _, t := range m.Triangles {
		f := facet{
			Normal: fromVector(t.Normal),
			V1:     fromVector(t.V1),
			V2:     fromVector(t.V2),
			V3:     fromVector(t.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &f); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write creates path and writes m in the chosen format.
func Write(path string, m *Model, asBinary bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if asBinary {
		err = WriteBinary(file, m)
	} else {
		err = WriteASCII(file, m)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
