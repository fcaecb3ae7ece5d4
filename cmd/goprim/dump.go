package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/philipparndt/goprim/internal/source"
	"github.com/philipparndt/goprim/pkg/vertex"
	"github.com/spf13/cobra"
)

var dumpLimit int

var dumpCmd = &cobra.Command{
	Use:   "dump <shape|scene.yaml>",
	Short: "Print vertex records as a table",
	Long:  "Print the interleaved records of a primitive or scene, one row per vertex. Use --limit 0 for all rows.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source.Load(args[0])
		if err != nil {
			return err
		}
		return dumpRecords(os.Stdout, src.Buffer, dumpLimit)
	},
}

func init() {
	dumpCmd.Flags().IntVarP(&dumpLimit, "limit", "n", 12, "maximum number of records to print")
	rootCmd.AddCommand(dumpCmd)
}

func dumpRecords(w io.Writer, buf vertex.Buffer, limit int) error {
	n := buf.Len()
	if limit > 0 && limit < n {
		n = limit
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tx\ty\tz\tr\tg\tb\tnx\tny\tnz\tu\tv\t")
	for i := 0; i < n; i++ {
		r := buf.Record(i)
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.2f\t%.2f\t%.2f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			i,
			r.Position[0], r.Position[1], r.Position[2],
			r.Color[0], r.Color[1], r.Color[2],
			r.Normal[0], r.Normal[1], r.Normal[2],
			r.UV[0], r.UV[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if n < buf.Len() {
		fmt.Fprintf(w, "... %d of %d records (%d triangles)\n", n, buf.Len(), buf.TriangleCount())
	}
	return nil
}
