package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/treedb/treedb"
	"github.com/treedb/treedb/internal/config"
	"github.com/treedb/treedb/internal/logging"
)

var (
	dbFlag         string
	passphraseFlag string
	jsonOutput     bool
	noColorFlag    bool

	fs       *treedb.FS
	fileLock *flock.Flock

	rootCtx = context.Background()
)

var rootCmd = &cobra.Command{
	Use:   "treedb",
	Short: "A hierarchical virtual filesystem backed by a single SQLite file",
	Long: `treedb stores a tree of directories and files inside one SQLite
database file. Use mkdir/cd/ls/rm/mv/cp/read/write/pwd the way you would
against a real filesystem; treedb persists the tree and its file payloads
in a single file you can copy, back up, or version like any other asset.`,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	SilenceUsage:       true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database file path (default: the \"db\" config key, .treedb/tree.db unless configured)")
	rootCmd.PersistentFlags().StringVar(&passphraseFlag, "passphrase", "", "at-rest encryption passphrase (default: $TREEDB_PASSPHRASE)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable ANSI color output")
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := logging.EnableFromEnv("TREEDB_DEBUG_LOG"); err != nil {
		return fmt.Errorf("enabling debug log: %w", err)
	}
	if debugLog := config.GetString("debug-log"); debugLog != "" && !logging.Enabled() {
		if err := logging.Enable(debugLog); err != nil {
			return fmt.Errorf("enabling debug log: %w", err)
		}
	}
	if noColorFlag {
		_ = os.Setenv("NO_COLOR", "1")
	}

	// init creates the database itself, with its own prompts for an
	// encryption passphrase; it must not be opened ahead of that.
	if cmd.Name() == "init" {
		return nil
	}

	dbPath := config.DBPath(dbFlag)
	if dbPath == "" {
		dbPath = "treedb.db"
	}

	fileLock = flock.New(dbPath + ".lock")
	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring lock on %s: %w", dbPath, err)
	}
	if !locked {
		return fmt.Errorf("another treedb process is already using %s", dbPath)
	}

	opts := treedb.DefaultOptions()
	opts.Passphrase = config.Passphrase(passphraseFlag)

	fs, err = treedb.Open(rootCtx, dbPath, opts)
	if err != nil {
		_ = fileLock.Unlock()
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	logging.Logf("opened %s", dbPath)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	var err error
	if fs != nil {
		err = fs.Close()
	}
	if fileLock != nil {
		_ = fileLock.Unlock()
	}
	return err
}

// fatal prints a formatted error to stderr and exits 1. JSON mode still
// writes to stderr, since an error is by definition not the JSON payload
// the caller asked for.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
