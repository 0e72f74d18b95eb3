// Command treedb is the CLI front-end for the treedb hierarchical
// filesystem: one subcommand per filesystem operation, plus an
// interactive shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
