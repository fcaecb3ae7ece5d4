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

type edgesOptions struct {
	count     int
	longest   bool
	shortest  bool
	minLength float64
	maxLength float64
}

var edgesOpts edgesOptions

var edgesCmd = &cobra.Command{
	Use:   "edges <file.stl|scene.yaml|shape>",
	Short: "Analyze and measure triangle edges",
	Long:  "Find and measure edges, including longest, shortest, or edges within a specific length range.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadModel(args[0])
		if err != nil {
			return err
		}
		printEdges(os.Stdout, analysis.AnalyzeModel(model), edgesOpts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesOpts.count, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesOpts.longest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesOpts.shortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesOpts.minLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesOpts.maxLength, "max", 0.0, "Maximum edge length filter")
}

// loadModel reads an STL file or builds a scene or primitive.
func loadModel(arg string) (*stl.Model, error) {
	if strings.EqualFold(filepath.Ext(arg), ".stl") {
		model, err := stl.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("error parsing STL file: %w", err)
		}
		return model, nil
	}

	src, err := source.Load(arg)
	if err != nil {
		return nil, err
	}
	return stl.FromBuffer(src.Name, src.Buffer), nil
}

func printEdges(w io.Writer, result *analysis.MeasurementResult, opts edgesOptions) {
	var edges []analysis.EdgeInfo
	var title string

	switch {
	case opts.longest:
		edges = analysis.FindLongestEdges(result, opts.count)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case opts.shortest:
		edges = analysis.FindShortestEdges(result, opts.count)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case opts.maxLength > 0:
		edges = analysis.FindEdgesByLength(result, opts.minLength, opts.maxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", opts.minLength, opts.maxLength, len(edges))
		edges = edges[:min(len(edges), opts.count)]
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(opts.count, len(edges)), len(edges))
		edges = edges[:min(len(edges), opts.count)]
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "Total edges in model: %d\n", result.EdgeCount)
	fmt.Fprintf(w, "Min edge length: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(w, "Max edge length: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(w, "Avg edge length: %.6f units\n\n", result.AvgEdgeLength)

	if len(edges) == 0 {
		fmt.Fprintln(w, "No edges found matching the criteria.")
		return
	}

	fmt.Fprintf(w, "%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
	fmt.Fprintln(w, strings.Repeat("-", 91))
	for i, edge := range edges {
		fmt.Fprintf(w, "%-6d %-35s %-35s %-15.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
}
