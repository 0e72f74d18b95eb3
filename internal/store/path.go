package store

import "strings"

// resolve walks p from root (if p starts with "/") or from start otherwise,
// honoring "." and "..", and returns the id of the node at the end of the
// walk. Callers must hold mu.
//
// Rules, applied in order:
//  1. empty p resolves to start.
//  2. "/" resolves to the root.
//  3. p is split on "/", dropping empty components (collapsing repeated or
//     trailing slashes).
//  4. "." is a no-op; ".." moves to the current node's parent (the parent
//     of root is root); any other component looks up a child by name and
//     fails if absent or if the current node is a file (files have no
//     children to traverse into).
func (fs *FS) resolve(start int64, p string) (int64, error) {
	if p == "" {
		return start, nil
	}
	if p == "/" {
		return rootID, nil
	}

	cur := start
	if strings.HasPrefix(p, "/") {
		cur = rootID
	}

	components := splitComponents(p)
	for i, c := range components {
		switch c {
		case ".":
			// no-op
		case "..":
			parent, err := fs.parentOf(cur)
			if err != nil {
				return 0, err
			}
			cur = parent
		default:
			node, err := fs.lookupByParentAndName(cur, c)
			if err != nil {
				return 0, err
			}
			if node == nil {
				if hint := fs.closestSiblingName(cur, c); hint != "" {
					return 0, notFoundf("can't find path %q (did you mean %q?)", p, hint)
				}
				return 0, notFoundf("can't find path %q", p)
			}
			if node.IsFile() && i != len(components)-1 {
				return 0, wrongKindf("%q is a file, cannot traverse into it", c)
			}
			cur = node.ID
		}
	}
	return cur, nil
}

// parentOf returns the parent id of id, or id itself if id is the root.
func (fs *FS) parentOf(id int64) (int64, error) {
	if id == rootID {
		return rootID, nil
	}
	node, err := fs.lookupByID(id)
	if err != nil {
		return 0, err
	}
	if node == nil {
		return 0, notFoundf("node %d vanished mid-resolve", id)
	}
	if node.ParentID == nil {
		return rootID, nil
	}
	return *node.ParentID, nil
}

// splitComponents splits p on "/" and drops empty components, so
// "a//b/" and "a/b" both yield ["a", "b"].
func splitComponents(p string) []string {
	raw := strings.Split(p, "/")
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// splitParentAndLeaf splits p at its last "/": everything before it is
// resolved (relative to start) as a directory path, and the remainder is
// the leaf name. A p with no "/" resolves its parent to start directly; a
// parent that resolves to a file fails with ErrWrongKind. mkdir and write
// shape their path with it, and mv and cp their destination when it has no
// trailing slash.
func (fs *FS) splitParentAndLeaf(start int64, p string) (parentID int64, leaf string, err error) {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return start, p, nil
	}

	dir := p[:idx+1]
	leaf = p[idx+1:]

	parentID, err = fs.resolve(start, dir)
	if err != nil {
		return 0, "", err
	}
	parent, err := fs.lookupByID(parentID)
	if err != nil {
		return 0, "", err
	}
	if parent != nil && parent.IsFile() {
		return 0, "", wrongKindf("%q is a file, not a directory", dir)
	}
	return parentID, leaf, nil
}

// isAncestor reports whether candidate is id itself or an ancestor of id,
// walking parent pointers up to the root. Used by mv's cycle check and by
// rm's cwd-reset rule.
func (fs *FS) isAncestor(candidate, id int64) (bool, error) {
	cur := id
	for {
		if cur == candidate {
			return true, nil
		}
		if cur == rootID {
			return false, nil
		}
		parent, err := fs.parentOf(cur)
		if err != nil {
			return false, err
		}
		if parent == cur {
			return false, nil
		}
		cur = parent
	}
}
