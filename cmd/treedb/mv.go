package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treedb/treedb/internal/ui"
)

var mvCmd = &cobra.Command{
	Use:   "mv <src> <dst>",
	Short: "Rename or reparent a file or directory",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fs.Mv(args[0], args[1]); err != nil {
			fatal("Error: %v", err)
		}
		if jsonOutput {
			outputJSON(map[string]any{"from": args[0], "to": args[1]})
			return
		}
		fmt.Printf("%s moved %s -> %s\n", ui.RenderPass("✓"), ui.RenderAccent(args[0]), ui.RenderAccent(args[1]))
	},
}

func init() {
	rootCmd.AddCommand(mvCmd)
}
