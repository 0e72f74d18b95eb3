package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treedb/treedb/internal/ui"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove a file or directory, along with every descendant",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !rmForce && !ui.PromptYesNo(fmt.Sprintf("Remove %s and everything under it?", args[0]), false) {
			fmt.Println("Aborted.")
			return
		}
		if err := fs.Rm(args[0]); err != nil {
			fatal("Error: %v", err)
		}
		if jsonOutput {
			outputJSON(map[string]any{"removed": args[0]})
			return
		}
		fmt.Printf("%s removed %s\n", ui.RenderPass("✓"), ui.RenderAccent(args[0]))
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}
