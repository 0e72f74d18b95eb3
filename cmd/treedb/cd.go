package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cdCmd = &cobra.Command{
	Use:   "cd <path>",
	Short: "Change the current working directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fs.Cd(args[0]); err != nil {
			fatal("Error: %v", err)
		}
		pwd, err := fs.Pwd()
		if err != nil {
			fatal("Error: %v", err)
		}
		if jsonOutput {
			outputJSON(map[string]any{"pwd": pwd})
			return
		}
		fmt.Println(pwd)
	},
}

func init() {
	rootCmd.AddCommand(cdCmd)
}
