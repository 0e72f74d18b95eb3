package store

import (
	"database/sql"
	"strings"
)

// validateName rejects the reserved names the spec forbids inside a leaf
// name: empty, ".", "..", or anything containing "/".
func validateName(name string) error {
	if name == "" {
		return wrongKindf("name must not be empty")
	}
	if name == "." || name == ".." {
		return wrongKindf("name %q is reserved", name)
	}
	if strings.Contains(name, "/") {
		return wrongKindf("name %q must not contain '/'", name)
	}
	return nil
}

// Write encodes payload through codecName (outside the mutex, so a codec
// that calls back into the registry can never deadlock against Write's own
// lock), then atomically inserts a new file node and its blob row. Write
// never replaces an existing file: a lookup of (parent_id, name) before the
// insert makes a second Write at the same path fail with ErrAlreadyExists,
// and the unique constraint on that pair backs the check up.
func (fs *FS) Write(fullPath string, payload []byte, codecName string) error {
	if codecName == "" {
		codecName = "raw"
	}

	encoded, err := fs.CallEncode(codecName, payload)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	parentID, leaf, err := fs.splitParentAndLeaf(fs.cwd, fullPath)
	if err != nil {
		return fs.fail(err)
	}
	if err := validateName(leaf); err != nil {
		return fs.fail(err)
	}

	if existing, lookupErr := fs.lookupByParentAndName(parentID, leaf); lookupErr != nil {
		return fs.fail(lookupErr)
	} else if existing != nil {
		return fs.fail(alreadyExistsf("%q already exists", fullPath))
	}

	tx, err := fs.db.Begin()
	if err != nil {
		return fs.fail(engineError("begin write", err))
	}
	defer func() { _ = tx.Rollback() }()

	id, err := insertFileMeta(tx, parentID, leaf, int64(len(encoded)), int64(len(payload)), codecName)
	if err != nil {
		return fs.fail(err)
	}

	if _, err := tx.Exec(`INSERT INTO fs_blobs (id, data) VALUES (?, ?)`, id, encoded); err != nil {
		return fs.fail(engineError("insert blob", err))
	}

	if err := tx.Commit(); err != nil {
		return fs.fail(engineError("commit write", err))
	}
	return nil
}

// Read resolves fullPath, loads its blob, releases the mutex, decodes the
// payload (so a reentrant codec cannot deadlock), then reacquires the
// mutex just long enough to cross-check the decoded length against the
// recorded size_raw. A mismatch is recorded as ErrBrokenInvariant but the
// decoded bytes are still returned, per spec.
func (fs *FS) Read(fullPath string) ([]byte, error) {
	fs.mu.Lock()

	id, err := fs.resolve(fs.cwd, fullPath)
	if err != nil {
		err = fs.fail(err)
		fs.mu.Unlock()
		return nil, err
	}

	node, err := fs.lookupByID(id)
	switch {
	case err != nil:
		err = fs.fail(err)
		fs.mu.Unlock()
		return nil, err
	case node == nil:
		err = fs.fail(notFoundf("can't find path %q", fullPath))
		fs.mu.Unlock()
		return nil, err
	case !node.IsFile():
		err = fs.fail(wrongKindf("%q is a directory", fullPath))
		fs.mu.Unlock()
		return nil, err
	}

	var encoded []byte
	loadErr := fs.db.QueryRow(`SELECT data FROM fs_blobs WHERE id = ?`, id).Scan(&encoded)
	codecName := ""
	if node.Codec != nil {
		codecName = *node.Codec
	}
	fs.mu.Unlock()

	if loadErr == sql.ErrNoRows {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		return nil, fs.fail(brokenInvariantf("file %q has no blob row", fullPath))
	}
	if loadErr != nil {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		return nil, fs.fail(engineError("load blob", loadErr))
	}

	// Decode happens with the mutex released: a codec composed of other
	// codecs calls back into CallDecode, which must never block on mu.
	decoded, decodeErr := fs.CallDecode(codecName, encoded)
	if decodeErr != nil {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		return nil, fs.fail(decodeErr)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if node.SizeRaw != nil && int64(len(decoded)) != *node.SizeRaw {
		fs.fail(brokenInvariantf("decoded size %d != recorded size_raw %d for %q", len(decoded), *node.SizeRaw, fullPath))
	}
	return decoded, nil
}

