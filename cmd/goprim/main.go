package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goprim/internal/logging"
	"github.com/philipparndt/goprim/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goprim",
	Short: "Generate primitive meshes as interleaved vertex buffers",
	Long: `goprim builds planes, cubes, pyramids, cylinders and spheres as flat
triangle lists with position, color, normal and texture coordinates per
vertex. Shapes can be written as STL, rendered to PNG, or combined in a
YAML scene file.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
