package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goprim/internal/source"
	"github.com/philipparndt/goprim/pkg/analysis"
	"github.com/philipparndt/goprim/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.stl|scene.yaml|shape>",
	Short: "Display information about an STL file, a scene or a primitive",
	Long:  "Show dimensions, triangle count, surface area and edge statistics. Scenes and primitives also report normal checks per shape.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	arg := args[0]
	if strings.EqualFold(filepath.Ext(arg), ".stl") {
		model, err := stl.Parse(arg)
		if err != nil {
			return fmt.Errorf("error parsing STL file: %w", err)
		}
		printModelInfo(os.Stdout, arg, model)
		return nil
	}

	src, err := source.Load(arg)
	if err != nil {
		return err
	}
	fmt.Printf("Source: %s\n", src.Name)
	fmt.Printf("Shapes: %d\n", len(src.Shapes))
	fmt.Printf("Triangles: %d\n\n", src.Buffer.TriangleCount())
	for _, r := range src.Shapes {
		analysis.Summarize(r).Print(os.Stdout)
		fmt.Println()
	}
	return nil
}

func printModelInfo(w io.Writer, filename string, model *stl.Model) {
	result := analysis.AnalyzeModel(model)

	fmt.Fprintln(w, "STL File Information")
	fmt.Fprintln(w, "====================")
	if model.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintln(w, "Model Statistics:")
	fmt.Fprintf(w, "  Triangles: %d\n", result.TriangleCount)
	if result.SkewedNormals > 0 {
		fmt.Fprintf(w, "  Skewed normals: %d\n", result.SkewedNormals)
	}
	if result.DegenerateCount > 0 {
		fmt.Fprintf(w, "  Degenerate: %d\n", result.DegenerateCount)
	}
	fmt.Fprintf(w, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(w, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(w, "  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(w, "  Depth (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(w, "  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Fprintf(w, "  Volume: %.6f cubic units\n\n", result.Volume)

	fmt.Fprintln(w, "Edge Lengths:")
	fmt.Fprintf(w, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(w, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(w, "  Average: %.6f units\n", result.AvgEdgeLength)

	if longest := analysis.FindLongestEdges(result, 3); len(longest) > 0 {
		fmt.Fprintln(w, "\nLongest Edges:")
		for _, e := range longest {
			fmt.Fprintf(w, "  %s -> %s  %s\n", analysis.FormatVector(e.Start), analysis.FormatVector(e.End), analysis.FormatMeasurement(e.Length, "units"))
		}
	}
}
