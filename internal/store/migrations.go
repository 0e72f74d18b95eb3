package store

import (
	"database/sql"
	"fmt"

	"github.com/treedb/treedb/internal/store/migrations"
)

// migration is a single named, idempotent schema step. Migrations run in
// order every time the database is opened; each records its name in
// fs_meta so repeated runs are cheap no-ops after the first.
type migration struct {
	name string
	fn   func(*sql.Tx) error
}

// migrationsList is the ordered ledger of all migrations ever introduced.
// New entries are appended, never reordered or removed, so an old database
// always replays the same sequence it would have seen on first upgrade.
var migrationsList = []migration{
	{"fs_meta_table", migrations.MetaTable},
	{"recursive_list_index", migrations.RecursiveListIndex},
}

// runMigrations applies every migration not yet recorded in fs_meta. It is
// called from inside the same transaction as the base schema, so a crash
// mid-migration leaves the database at its previous, fully-migrated state.
func runMigrations(tx *sql.Tx) error {
	// fs_meta may not exist yet on a brand-new database; the base schema
	// creates it, so this only matters the very first time bootstrap runs,
	// where the CREATE TABLE above it in schema.go has already executed
	// within the same transaction.
	for _, m := range migrationsList {
		applied, err := migrationApplied(tx, m.name)
		if err != nil {
			return engineError("check migration "+m.name, err)
		}
		if applied {
			continue
		}
		if err := m.fn(tx); err != nil {
			return engineError("run migration "+m.name, err)
		}
		if err := recordMigration(tx, m.name); err != nil {
			return engineError("record migration "+m.name, err)
		}
	}
	return nil
}

func migrationApplied(tx *sql.Tx, name string) (bool, error) {
	var value string
	err := tx.QueryRow(`SELECT value FROM fs_meta WHERE key = ?`, migrationKey(name)).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == "applied", nil
}

func recordMigration(tx *sql.Tx, name string) error {
	_, err := tx.Exec(`INSERT OR REPLACE INTO fs_meta (key, value) VALUES (?, 'applied')`, migrationKey(name))
	return err
}

func migrationKey(name string) string {
	return fmt.Sprintf("migration:%s", name)
}
