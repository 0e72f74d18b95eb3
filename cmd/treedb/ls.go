package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treedb/treedb"
	"github.com/treedb/treedb/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the children of a directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		children, err := fs.Ls(path)
		if err != nil {
			fatal("Error: %v", err)
		}

		if jsonOutput {
			outputJSON(children)
			return
		}
		printListing(children)
	},
}

func printListing(children []treedb.Node) {
	if len(children) == 0 {
		return
	}

	t := ui.NewListingTable(ui.GetWidth())
	t.Headers("NAME", "KIND", "SIZE", "CODEC")
	for _, n := range children {
		kind := "dir"
		size := "-"
		codecName := "-"
		if n.IsFile() {
			kind = "file"
			if n.SizeRaw != nil {
				size = fmt.Sprintf("%d", *n.SizeRaw)
			}
			if n.Codec != nil {
				codecName = *n.Codec
			}
		}
		t.Row(n.Name, kind, size, codecName)
	}
	fmt.Println(t.Render())
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
