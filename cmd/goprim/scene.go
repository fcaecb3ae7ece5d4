package main

import (
	"os"

	"github.com/philipparndt/goprim/internal/source"
	"github.com/spf13/cobra"
)

var sceneOutput outputFlags

var sceneCmd = &cobra.Command{
	Use:   "scene <file.yaml>",
	Short: "Build every shape in a scene file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source.Load(args[0])
		if err != nil {
			return err
		}
		return sceneOutput.emit(os.Stdout, src.Name, src.Buffer, src.Shapes)
	},
}

func init() {
	sceneOutput.register(sceneCmd)
	rootCmd.AddCommand(sceneCmd)
}
