package store

import (
	"database/sql"
)

// queryer is satisfied by both *sql.DB and *sql.Tx, so the node-store
// helpers below can run either as part of a larger transaction (insert,
// rename, reparent) or directly against the pooled connection (the
// read-only lookups).
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

func scanNode(row *sql.Row) (*Node, error) {
	var n Node
	var parentID sql.NullInt64
	var sizeStored, sizeRaw sql.NullInt64
	var codecName sql.NullString

	err := row.Scan(&n.ID, &parentID, &n.Name, &n.Attributes, &sizeStored, &sizeRaw, &codecName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, engineError("scan node", err)
	}

	if parentID.Valid {
		n.ParentID = &parentID.Int64
	}
	if sizeStored.Valid {
		n.SizeStored = &sizeStored.Int64
	}
	if sizeRaw.Valid {
		n.SizeRaw = &sizeRaw.Int64
	}
	if codecName.Valid {
		n.Codec = &codecName.String
	}
	return &n, nil
}

const nodeColumns = `id, parent_id, name, attributes, size_stored, size_raw, codec`

// lookupByParentAndName returns the child named name under parentID, or
// nil if no such child exists.
func (fs *FS) lookupByParentAndName(parentID int64, name string) (*Node, error) {
	row := fs.db.QueryRow(`SELECT `+nodeColumns+` FROM fs_nodes WHERE parent_id = ? AND name = ?`, parentID, name)
	return scanNode(row)
}

// lookupByID returns the node with the given id, or nil if absent. The
// root's parent_id is NULL in storage but conceptually "no parent";
// lookupByID surfaces that as a nil ParentID.
func (fs *FS) lookupByID(id int64) (*Node, error) {
	if id == rootID {
		row := fs.db.QueryRow(`SELECT ` + nodeColumns + ` FROM fs_nodes WHERE id = 0`)
		return scanNode(row)
	}
	row := fs.db.QueryRow(`SELECT `+nodeColumns+` FROM fs_nodes WHERE id = ?`, id)
	return scanNode(row)
}

// listChildren returns every node directly under parentID, ordered by
// name for stable output.
func (fs *FS) listChildren(parentID int64) ([]Node, error) {
	rows, err := fs.db.Query(`SELECT `+nodeColumns+` FROM fs_nodes WHERE parent_id = ? ORDER BY name`, parentID)
	if err != nil {
		return nil, engineError("list children", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Node
	for rows.Next() {
		var n Node
		var parentIDNull sql.NullInt64
		var sizeStored, sizeRaw sql.NullInt64
		var codecName sql.NullString
		if err := rows.Scan(&n.ID, &parentIDNull, &n.Name, &n.Attributes, &sizeStored, &sizeRaw, &codecName); err != nil {
			return nil, engineError("scan child", err)
		}
		if parentIDNull.Valid {
			n.ParentID = &parentIDNull.Int64
		}
		if sizeStored.Valid {
			n.SizeStored = &sizeStored.Int64
		}
		if sizeRaw.Valid {
			n.SizeRaw = &sizeRaw.Int64
		}
		if codecName.Valid {
			n.Codec = &codecName.String
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, engineError("iterate children", err)
	}
	return out, nil
}

// insertDir inserts a new directory row and returns its id.
func insertDir(q queryer, parentID int64, name string) (int64, error) {
	res, err := q.Exec(`INSERT INTO fs_nodes (parent_id, name, attributes) VALUES (?, ?, 0)`, parentID, name)
	if err != nil {
		return 0, engineError("insert directory", err)
	}
	return res.LastInsertId()
}

// insertFileMeta inserts a new file row (FILE bit set) with the given
// recorded sizes and codec name, and returns its id.
func insertFileMeta(q queryer, parentID int64, name string, sizeStored, sizeRaw int64, codecName string) (int64, error) {
	res, err := q.Exec(
		`INSERT INTO fs_nodes (parent_id, name, attributes, size_stored, size_raw, codec) VALUES (?, ?, ?, ?, ?, ?)`,
		parentID, name, attrFile, sizeStored, sizeRaw, codecName,
	)
	if err != nil {
		return 0, engineError("insert file metadata", err)
	}
	return res.LastInsertId()
}

// deleteSubtree deletes id; ON DELETE CASCADE removes every descendant
// node and blob along with it.
func deleteSubtree(q queryer, id int64) error {
	res, err := q.Exec(`DELETE FROM fs_nodes WHERE id = ?`, id)
	if err != nil {
		return engineError("delete subtree", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return engineError("delete subtree rows affected", err)
	}
	if n == 0 {
		return notFoundf("node %d does not exist", id)
	}
	return nil
}

// setParent reparents id to newParentID.
func setParent(q queryer, id, newParentID int64) error {
	_, err := q.Exec(`UPDATE fs_nodes SET parent_id = ? WHERE id = ?`, newParentID, id)
	if err != nil {
		return engineError("reparent node", err)
	}
	return nil
}

// setName renames id to newName.
func setName(q queryer, id int64, newName string) error {
	_, err := q.Exec(`UPDATE fs_nodes SET name = ? WHERE id = ?`, newName, id)
	if err != nil {
		return engineError("rename node", err)
	}
	return nil
}

// buildAbsolutePath reconstructs the absolute path of id via a recursive
// CTE that walks id -> parent -> ... -> root and concatenates names with
// "/". The root itself is the special case "/".
func (fs *FS) buildAbsolutePath(id int64) (string, error) {
	if id == rootID {
		return "/", nil
	}

	const query = `
		WITH RECURSIVE ancestors(id, parent_id, name, depth) AS (
			SELECT id, parent_id, name, 0 FROM fs_nodes WHERE id = ?
			UNION ALL
			SELECT n.id, n.parent_id, n.name, a.depth + 1
			FROM fs_nodes n
			JOIN ancestors a ON n.id = a.parent_id
		)
		SELECT name FROM ancestors ORDER BY depth DESC
	`
	rows, err := fs.db.Query(query, id)
	if err != nil {
		return "", engineError("build absolute path", err)
	}
	defer func() { _ = rows.Close() }()

	var parts []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", engineError("scan path component", err)
		}
		parts = append(parts, name)
	}
	if err := rows.Err(); err != nil {
		return "", engineError("iterate path components", err)
	}
	if len(parts) == 0 {
		return "", notFoundf("node %d does not exist", id)
	}

	// parts[0] is the root's own name ("/"); join the rest with "/".
	out := "/"
	for _, name := range parts[1:] {
		if out != "/" {
			out += "/"
		}
		out += name
	}
	return out, nil
}
