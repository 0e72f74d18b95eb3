package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pwdCmd = &cobra.Command{
	Use:   "pwd",
	Short: "Print the current working directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := fs.Pwd()
		if err != nil {
			fatal("Error: %v", err)
		}
		if jsonOutput {
			outputJSON(map[string]any{"pwd": p})
			return
		}
		fmt.Println(p)
	},
}

func init() {
	rootCmd.AddCommand(pwdCmd)
}
