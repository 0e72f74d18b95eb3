package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var readTo string

var readCmd = &cobra.Command{
	Use:   "read <path>",
	Short: "Print a file's decoded payload to stdout, or save it to a local file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		payload, err := fs.Read(args[0])
		if err != nil {
			fatal("Error: %v", err)
		}

		if readTo != "" {
			if err := os.WriteFile(readTo, payload, 0o644); err != nil {
				fatal("Error: %v", err)
			}
			if jsonOutput {
				outputJSON(map[string]any{"read": args[0], "bytes": len(payload), "saved_to": readTo})
				return
			}
			fmt.Printf("saved %d bytes to %s\n", len(payload), readTo)
			return
		}

		if jsonOutput {
			outputJSON(map[string]any{"read": args[0], "bytes": len(payload)})
			return
		}
		os.Stdout.Write(payload)
	},
}

func init() {
	readCmd.Flags().StringVar(&readTo, "to", "", "save the payload to this local file instead of stdout")
	rootCmd.AddCommand(readCmd)
}
