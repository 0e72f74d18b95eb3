package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/treedb/treedb/internal/config"
	"github.com/treedb/treedb/internal/ui"
)

var (
	writeCodec string
	writeFrom  string
)

var writeCmd = &cobra.Command{
	Use:   "write <path>",
	Short: "Create a file, reading its payload from a local file or stdin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			payload []byte
			err     error
		)
		if writeFrom != "" {
			payload, err = os.ReadFile(writeFrom)
		} else {
			payload, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			fatal("Error: %v", err)
		}

		codecName := writeCodec
		if codecName == "" {
			codecName = config.GetString("codec")
		}

		if err := fs.Write(args[0], payload, codecName); err != nil {
			fatal("Error: %v", err)
		}

		if jsonOutput {
			outputJSON(map[string]any{"written": args[0], "bytes": len(payload), "codec": codecName})
			return
		}
		fmt.Printf("%s wrote %d bytes to %s\n", ui.RenderPass("✓"), len(payload), ui.RenderAccent(args[0]))
	},
}

func init() {
	writeCmd.Flags().StringVar(&writeCodec, "codec", "", "codec to encode the payload with (defaults to the configured default)")
	writeCmd.Flags().StringVar(&writeFrom, "from", "", "read the payload from this local file instead of stdin")
	rootCmd.AddCommand(writeCmd)
}
