package store

import "database/sql"

// schema is applied in full at Open time, inside one transaction. Every
// statement is idempotent so opening an existing database is a no-op beyond
// the root-sentinel insert.
const schema = `
CREATE TABLE IF NOT EXISTS fs_nodes (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    parent_id  INTEGER REFERENCES fs_nodes(id) ON DELETE CASCADE,
    name       TEXT NOT NULL,
    attributes INTEGER NOT NULL DEFAULT 0,
    size_stored INTEGER,
    size_raw    INTEGER,
    codec       TEXT,
    UNIQUE (parent_id, name)
);

CREATE INDEX IF NOT EXISTS idx_fs_nodes_parent ON fs_nodes(parent_id);

CREATE TABLE IF NOT EXISTS fs_blobs (
    id   INTEGER PRIMARY KEY REFERENCES fs_nodes(id) ON DELETE CASCADE,
    data BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS fs_meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Root sentinel: id 0, name '/', no parent, attributes 0 (directory).
-- SQLite's AUTOINCREMENT starts assigning at 1, so the explicit id=0 row
-- never collides with a generated id.
INSERT OR IGNORE INTO fs_nodes (id, parent_id, name, attributes) VALUES (0, NULL, '/', 0);
`

// attrFile is the FILE bit (bit 0) of fs_nodes.attributes. Every other bit
// is reserved and must be zero on write.
const attrFile = 1 << 0

// bootstrap runs the base schema and the migration ledger inside a single
// transaction, so a partially-initialized database is never observable.
func bootstrap(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return engineError("begin bootstrap", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(schema); err != nil {
		return engineError("apply schema", err)
	}

	if err := runMigrations(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return engineError("commit bootstrap", err)
	}
	return nil
}
