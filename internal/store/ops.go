package store

import "strings"

// Mkdir creates a directory at fullPath. The parent must already exist and
// must be a directory; the leaf must not already exist under it. Mkdir does
// not create intermediate directories — every component but the leaf must
// already resolve.
func (fs *FS) Mkdir(fullPath string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	parentID, leaf, err := fs.splitParentAndLeaf(fs.cwd, fullPath)
	if err != nil {
		return fs.fail(err)
	}
	if err := validateName(leaf); err != nil {
		return fs.fail(err)
	}

	existing, err := fs.lookupByParentAndName(parentID, leaf)
	if err != nil {
		return fs.fail(err)
	}
	if existing != nil {
		return fs.fail(alreadyExistsf("%q already exists", fullPath))
	}

	tx, err := fs.db.Begin()
	if err != nil {
		return fs.fail(engineError("begin mkdir", err))
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := insertDir(tx, parentID, leaf); err != nil {
		return fs.fail(err)
	}
	if err := tx.Commit(); err != nil {
		return fs.fail(engineError("commit mkdir", err))
	}
	return nil
}

// Rm deletes the node at fullPath along with every descendant. Rm refuses
// to remove the root. If the current working directory is fullPath itself
// or lies beneath it, the cwd resets to the root, matching the spec's rule
// that a dangling cwd must never be observable.
func (fs *FS) Rm(fullPath string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	id, err := fs.resolve(fs.cwd, fullPath)
	if err != nil {
		return fs.fail(err)
	}
	if id == rootID {
		return fs.fail(wrongKindf("cannot remove the root directory"))
	}

	underRemoved, err := fs.isAncestor(id, fs.cwd)
	if err != nil {
		return fs.fail(err)
	}

	tx, err := fs.db.Begin()
	if err != nil {
		return fs.fail(engineError("begin rm", err))
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteSubtree(tx, id); err != nil {
		return fs.fail(err)
	}
	if err := tx.Commit(); err != nil {
		return fs.fail(engineError("commit rm", err))
	}

	if underRemoved {
		fs.cwd = rootID
	}
	return nil
}

// Mv moves (and optionally renames) the node at srcPath to dstPath. If
// dstPath ends in "/" and names an existing directory, the source is moved
// inside it under its own leaf name; without the trailing slash dstPath is
// taken literally (see destination). Mv refuses to move a node into its own
// subtree, and refuses to overwrite an existing file or directory at the
// resolved destination.
func (fs *FS) Mv(srcPath, dstPath string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	srcID, err := fs.resolve(fs.cwd, srcPath)
	if err != nil {
		return fs.fail(err)
	}
	if srcID == rootID {
		return fs.fail(wrongKindf("cannot move the root directory"))
	}

	dstParentID, dstLeaf, err := fs.destination(srcPath, dstPath)
	if err != nil {
		return fs.fail(err)
	}
	if err := validateName(dstLeaf); err != nil {
		return fs.fail(err)
	}

	if isAnc, err := fs.isAncestor(srcID, dstParentID); err != nil {
		return fs.fail(err)
	} else if isAnc {
		return fs.fail(wrongKindf("cannot move %q into its own subtree", srcPath))
	}

	existing, err := fs.lookupByParentAndName(dstParentID, dstLeaf)
	if err != nil {
		return fs.fail(err)
	}
	if existing != nil {
		return fs.fail(alreadyExistsf("%q already exists", dstPath))
	}

	tx, err := fs.db.Begin()
	if err != nil {
		return fs.fail(engineError("begin mv", err))
	}
	defer func() { _ = tx.Rollback() }()

	if err := setParent(tx, srcID, dstParentID); err != nil {
		return fs.fail(err)
	}
	if err := setName(tx, srcID, dstLeaf); err != nil {
		return fs.fail(err)
	}
	if err := tx.Commit(); err != nil {
		return fs.fail(engineError("commit mv", err))
	}
	return nil
}

// Cp copies the file at srcPath to dstPath. Only files may be copied —
// copying a directory is explicitly out of scope and fails with
// ErrWrongKind, matching the spec's "cp a directory" edge case. The blob
// row is duplicated verbatim: the copy is not re-encoded, since the payload
// on disk is already the codec's output.
func (fs *FS) Cp(srcPath, dstPath string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	srcID, err := fs.resolve(fs.cwd, srcPath)
	if err != nil {
		return fs.fail(err)
	}
	srcNode, err := fs.lookupByID(srcID)
	if err != nil {
		return fs.fail(err)
	}
	if srcNode == nil {
		return fs.fail(notFoundf("can't find path %q", srcPath))
	}
	if !srcNode.IsFile() {
		return fs.fail(wrongKindf("%q is a directory, cp only copies files", srcPath))
	}

	dstParentID, dstLeaf, err := fs.destination(srcPath, dstPath)
	if err != nil {
		return fs.fail(err)
	}
	if err := validateName(dstLeaf); err != nil {
		return fs.fail(err)
	}

	existing, err := fs.lookupByParentAndName(dstParentID, dstLeaf)
	if err != nil {
		return fs.fail(err)
	}
	if existing != nil {
		return fs.fail(alreadyExistsf("%q already exists", dstPath))
	}

	tx, err := fs.db.Begin()
	if err != nil {
		return fs.fail(engineError("begin cp", err))
	}
	defer func() { _ = tx.Rollback() }()

	var encoded []byte
	if err := tx.QueryRow(`SELECT data FROM fs_blobs WHERE id = ?`, srcID).Scan(&encoded); err != nil {
		return fs.fail(engineError("load source blob", err))
	}

	sizeStored := int64(0)
	if srcNode.SizeStored != nil {
		sizeStored = *srcNode.SizeStored
	}
	sizeRaw := int64(0)
	if srcNode.SizeRaw != nil {
		sizeRaw = *srcNode.SizeRaw
	}
	codecName := ""
	if srcNode.Codec != nil {
		codecName = *srcNode.Codec
	}

	newID, err := insertFileMeta(tx, dstParentID, dstLeaf, sizeStored, sizeRaw, codecName)
	if err != nil {
		return fs.fail(err)
	}
	if _, err := tx.Exec(`INSERT INTO fs_blobs (id, data) VALUES (?, ?)`, newID, encoded); err != nil {
		return fs.fail(engineError("insert copied blob", err))
	}
	if err := tx.Commit(); err != nil {
		return fs.fail(engineError("commit cp", err))
	}
	return nil
}

// destination resolves the (parentID, leaf) pair mv and cp should write to.
// A trailing "/" on dstPath means "place inside this directory, keeping
// srcPath's own final component" — "mv a/b c/" lands at c/b, and fails if c
// is not an existing directory. Without the trailing slash, dstPath is
// taken literally: "mv a/b c" targets the path c itself, even if c happens
// to already exist as a directory, in which case the no-overwrite rule
// rejects it.
func (fs *FS) destination(srcPath, dstPath string) (parentID int64, leaf string, err error) {
	if strings.HasSuffix(dstPath, "/") {
		dstID, resolveErr := fs.resolve(fs.cwd, dstPath)
		if resolveErr != nil {
			return 0, "", resolveErr
		}
		dstNode, lookupErr := fs.lookupByID(dstID)
		if lookupErr != nil {
			return 0, "", lookupErr
		}
		if dstNode == nil {
			return 0, "", notFoundf("can't find path %q", dstPath)
		}
		if dstNode.IsFile() {
			return 0, "", wrongKindf("%q is a file, not a directory", dstPath)
		}
		return dstID, srcLeafName(srcPath), nil
	}
	return fs.splitParentAndLeaf(fs.cwd, dstPath)
}

// srcLeafName returns the final path component of p, ignoring a trailing
// slash.
func srcLeafName(p string) string {
	trimmed := strings.TrimSuffix(p, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// Vacuum runs SQLite's VACUUM, reclaiming space left behind by deleted
// nodes and blobs. It takes the facade's mutex for its entire duration,
// since VACUUM requires exclusive access to the database file.
func (fs *FS) Vacuum() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := fs.db.Exec(`VACUUM`); err != nil {
		return fs.fail(engineError("vacuum", err))
	}
	return nil
}
