package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/treedb/treedb"
	"github.com/treedb/treedb/internal/config"
	"github.com/treedb/treedb/internal/ui"
)

var (
	initEncrypt    bool
	initNoPrompt   bool
	initPassphrase string
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a fresh database file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.DBPath(dbFlag)
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil {
			fatal("Error: %s already exists", path)
		}

		passphrase := []byte(initPassphrase)
		if initEncrypt && initPassphrase == "" && initNoPrompt {
			fatal("Error: --encrypt needs --passphrase when --no-prompt is set")
		}
		if initEncrypt && initPassphrase == "" && !initNoPrompt {
			var entered string
			confirm := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Passphrase").
						Description("Used to encrypt the database at rest; lost passphrases cannot be recovered").
						EchoMode(huh.EchoModePassword).
						Value(&entered),
				),
			)
			if err := confirm.Run(); err != nil {
				fatal("Error: %v", err)
			}
			passphrase = []byte(entered)
		}

		opts := treedb.DefaultOptions()
		if len(passphrase) > 0 {
			opts.Passphrase = passphrase
		}

		newFS, err := treedb.Open(context.Background(), path, opts)
		if err != nil {
			fatal("Error: %v", err)
		}
		if err := newFS.Close(); err != nil {
			fatal("Error: %v", err)
		}

		if jsonOutput {
			outputJSON(map[string]any{"initialized": path, "encrypted": len(passphrase) > 0})
			return
		}
		fmt.Printf("%s initialized %s\n", ui.RenderPass("✓"), ui.RenderAccent(path))
	},
}

func init() {
	initCmd.Flags().BoolVar(&initEncrypt, "encrypt", false, "encrypt the new database with a passphrase")
	initCmd.Flags().StringVar(&initPassphrase, "passphrase", "", "passphrase to use, skipping the prompt")
	initCmd.Flags().BoolVar(&initNoPrompt, "no-prompt", false, "fail instead of prompting when --encrypt is set without --passphrase")
	rootCmd.AddCommand(initCmd)
}
