package store

// Ls lists the children of the directory at path (the current working
// directory if path is empty). If path names a file, Ls returns a
// singleton slice containing just that file's Node, matching a plain
// shell's "ls a-file" behavior.
func (fs *FS) Ls(path string) ([]Node, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	id, err := fs.resolve(fs.cwd, path)
	if err != nil {
		return nil, fs.fail(err)
	}
	node, err := fs.lookupByID(id)
	if err != nil {
		return nil, fs.fail(err)
	}
	if node == nil {
		return nil, fs.fail(notFoundf("can't find path %q", path))
	}
	if node.IsFile() {
		return []Node{*node}, nil
	}

	children, err := fs.listChildren(id)
	if err != nil {
		return nil, fs.fail(err)
	}
	return children, nil
}

// Pwd returns the absolute path of the current working directory.
func (fs *FS) Pwd() (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	p, err := fs.buildAbsolutePath(fs.cwd)
	if err != nil {
		return "", fs.fail(err)
	}
	return p, nil
}

// Cd changes the current working directory to path. Cd fails with
// ErrWrongKind if path resolves to a file, and leaves the cwd unchanged on
// any failure.
func (fs *FS) Cd(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	id, err := fs.resolve(fs.cwd, path)
	if err != nil {
		return fs.fail(err)
	}
	node, err := fs.lookupByID(id)
	if err != nil {
		return fs.fail(err)
	}
	if node == nil {
		return fs.fail(notFoundf("can't find path %q", path))
	}
	if node.IsFile() {
		return fs.fail(wrongKindf("%q is a file, cannot cd into it", path))
	}

	fs.cwd = id
	return nil
}
