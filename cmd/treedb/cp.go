package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treedb/treedb/internal/ui"
)

var cpCmd = &cobra.Command{
	Use:   "cp <src> <dst>",
	Short: "Copy a file's stored payload to a new path",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fs.Cp(args[0], args[1]); err != nil {
			fatal("Error: %v", err)
		}
		if jsonOutput {
			outputJSON(map[string]any{"from": args[0], "to": args[1]})
			return
		}
		fmt.Printf("%s copied %s -> %s\n", ui.RenderPass("✓"), ui.RenderAccent(args[0]), ui.RenderAccent(args[1]))
	},
}

func init() {
	rootCmd.AddCommand(cpCmd)
}
