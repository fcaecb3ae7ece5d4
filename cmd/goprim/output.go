package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/philipparndt/goprim/pkg/analysis"
	"github.com/philipparndt/goprim/pkg/gpu"
	"github.com/philipparndt/goprim/pkg/openscad"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/philipparndt/goprim/pkg/stl"
	"github.com/philipparndt/goprim/pkg/vertex"
	"github.com/philipparndt/goprim/pkg/viewer"
	"github.com/spf13/cobra"
)

// outputFlags are shared by every command that produces a mesh.
type outputFlags struct {
	stlPath  string
	binary   bool
	pngPath  string
	scadPath string
	width    int
	height   int
	quiet    bool
	upload   bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.stlPath, "output", "o", "", "write the mesh as STL to this path")
	cmd.Flags().BoolVar(&o.binary, "binary", false, "write binary STL instead of ASCII")
	cmd.Flags().StringVar(&o.pngPath, "png", "", "render a preview PNG to this path")
	cmd.Flags().StringVar(&o.scadPath, "scad", "", "write the shapes as OpenSCAD polyhedra to this path")
	cmd.Flags().IntVar(&o.width, "png-width", 640, "preview width in pixels")
	cmd.Flags().IntVar(&o.height, "png-height", 480, "preview height in pixels")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "do not print the shape summary")
	cmd.Flags().BoolVar(&o.upload, "check-upload", false, "upload every shape to an in-memory backend and report the size")
}

// emit writes the requested files for buf and prints a summary of each
// shape to w.
func (o *outputFlags) emit(w io.Writer, name string, buf vertex.Buffer, shapes []shape.Renderable) error {
	if !o.quiet {
		for _, r := range shapes {
			analysis.Summarize(r).Print(w)
		}
	}

	if o.upload {
		if err := checkUpload(w, shapes); err != nil {
			return err
		}
	}

	if o.stlPath != "" {
		if err := stl.Write(o.stlPath, stl.FromBuffer(name, buf), o.binary); err != nil {
			return err
		}
		slog.Info("Wrote STL", "path", o.stlPath, "triangles", buf.TriangleCount(), "binary", o.binary)
	}

	if o.scadPath != "" {
		if err := openscad.WriteFile(o.scadPath, name, shapes); err != nil {
			return err
		}
		slog.Info("Wrote OpenSCAD", "path", o.scadPath, "shapes", len(shapes))
	}

	if o.pngPath != "" {
		opts := viewer.DefaultOptions()
		opts.Width = o.width
		opts.Height = o.height
		opts.Caption = caption(name, shapes, buf)
		if err := viewer.SavePNG(o.pngPath, buf, opts); err != nil {
			return err
		}
		slog.Info("Wrote preview", "path", o.pngPath)
	}
	return nil
}

// checkUpload runs shapes through the same upload, draw and release
// sequence as the viewers, without a graphics context.
func checkUpload(w io.Writer, shapes []shape.Renderable) error {
	mem := gpu.NewMemoryUploader()
	set, err := gpu.Upload(mem, shapes)
	if err != nil {
		return fmt.Errorf("upload check: %w", err)
	}
	if err := set.Draw(); err != nil {
		return fmt.Errorf("upload check: %w", err)
	}

	total := 0
	for _, m := range set.Meshes() {
		total += len(mem.Data(m.Handle()))
	}
	fmt.Fprintf(w, "Upload: %d meshes, %d bytes, stride %d\n", len(set.Meshes()), total, vertex.StrideBytes)

	if err := set.Release(); err != nil {
		return err
	}
	if live := mem.Live(); live != 0 {
		return fmt.Errorf("upload check: %d handles still live", live)
	}
	return nil
}

func caption(name string, shapes []shape.Renderable, buf vertex.Buffer) string {
	kinds := make([]string, len(shapes))
	for i, r := range shapes {
		kinds[i] = string(r.Kind())
	}
	label := strings.Join(kinds, ", ")
	if name != "" && name != label {
		label = name + ": " + label
	}
	return fmt.Sprintf("%s (%d triangles)", label, buf.TriangleCount())
}
