package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treedb/treedb/internal/ui"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fs.Mkdir(args[0]); err != nil {
			fatal("Error: %v", err)
		}
		if jsonOutput {
			outputJSON(map[string]any{"created": args[0]})
			return
		}
		fmt.Printf("%s created %s\n", ui.RenderPass("✓"), ui.RenderAccent(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}
