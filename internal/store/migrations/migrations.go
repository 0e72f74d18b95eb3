// Package migrations holds individual, idempotent schema migration
// functions for the treedb store. Each function is safe to run against a
// database that has already had it applied.
package migrations

import "database/sql"

// columnExists reports whether a column is present on a table, using
// PRAGMA table_info the way sqlite schema introspection is meant to be
// used (no information_schema in SQLite).
func columnExists(tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.Query(`PRAGMA table_info(` + table + `)`)
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notnull    int
			dfltValue  any
			pk         int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// MetaTable ensures fs_meta exists. It is a no-op when schema.go's base
// schema already created the table (the common case); it exists mainly to
// demonstrate the ledger mechanism and to let a pre-migration database
// (one created before fs_meta existed) catch up.
func MetaTable(tx *sql.Tx) error {
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS fs_meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	return err
}

// RecursiveListIndex adds an index on fs_nodes(parent_id, name), the key
// used by child lookups by name and by name-ordered child listings.
func RecursiveListIndex(tx *sql.Tx) error {
	_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_fs_nodes_parent_name ON fs_nodes(parent_id, name)`)
	return err
}
