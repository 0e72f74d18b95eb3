package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treedb/treedb/internal/ui"
)

var vacuumCmd = &cobra.Command{
	Use:   "vacuum",
	Short: "Reclaim space left behind by deleted nodes and payloads",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := fs.Vacuum(); err != nil {
			fatal("Error: %v", err)
		}
		if jsonOutput {
			outputJSON(map[string]any{"vacuumed": true})
			return
		}
		fmt.Printf("%s vacuumed %s\n", ui.RenderPass("✓"), ui.RenderAccent(fs.Path()))
	},
}

func init() {
	rootCmd.AddCommand(vacuumCmd)
}
