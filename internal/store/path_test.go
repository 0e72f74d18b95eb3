package store

import (
	"errors"
	"testing"
)

func TestResolveDotAndDotDot(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "a")
	mustMkdir(t, fs, "a/b")

	if err := fs.Cd("a/b"); err != nil {
		t.Fatalf("Cd(a/b) failed: %v", err)
	}

	cases := []struct {
		path string
		want string
	}{
		{".", "/a/b"},
		{"..", "/a"},
		{"../..", "/"},
		{"../../a", "/a"},
		{"/", "/"},
		{"/a", "/a"},
	}
	for _, c := range cases {
		id, err := fs.resolve(fs.cwd, c.path)
		if err != nil {
			t.Fatalf("resolve(%q) failed: %v", c.path, err)
		}
		got, err := fs.buildAbsolutePath(id)
		if err != nil {
			t.Fatalf("buildAbsolutePath after resolve(%q) failed: %v", c.path, err)
		}
		if got != c.want {
			t.Errorf("resolve(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestResolveTraversalThroughFileFails(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "leaf.txt", []byte("hi"), "")

	_, err := fs.resolve(fs.cwd, "leaf.txt/nested")
	if err == nil {
		t.Fatal("expected traversal through a file to fail")
	}
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
}

func TestResolveMissingComponentIsNotFound(t *testing.T) {
	fs := newTestFS(t)

	_, err := fs.resolve(fs.cwd, "nope/nested")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSplitParentAndLeaf(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "a")

	parentID, leaf, err := fs.splitParentAndLeaf(fs.cwd, "a/b.txt")
	if err != nil {
		t.Fatalf("splitParentAndLeaf failed: %v", err)
	}
	if leaf != "b.txt" {
		t.Fatalf("expected leaf %q, got %q", "b.txt", leaf)
	}
	aID, err := fs.resolve(fs.cwd, "a")
	if err != nil {
		t.Fatalf("resolve(a) failed: %v", err)
	}
	if parentID != aID {
		t.Fatalf("expected parent id %d, got %d", aID, parentID)
	}

	parentID, leaf, err = fs.splitParentAndLeaf(fs.cwd, "solo.txt")
	if err != nil {
		t.Fatalf("splitParentAndLeaf(solo) failed: %v", err)
	}
	if leaf != "solo.txt" || parentID != fs.cwd {
		t.Fatalf("expected (cwd, solo.txt), got (%d, %q)", parentID, leaf)
	}
}

func TestIsAncestor(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "a")
	mustMkdir(t, fs, "a/b")
	mustMkdir(t, fs, "a/b/c")

	aID, _ := fs.resolve(fs.cwd, "a")
	bID, _ := fs.resolve(fs.cwd, "a/b")
	cID, _ := fs.resolve(fs.cwd, "a/b/c")

	if ok, err := fs.isAncestor(aID, cID); err != nil || !ok {
		t.Fatalf("expected a to be an ancestor of c, got ok=%v err=%v", ok, err)
	}
	if ok, err := fs.isAncestor(cID, aID); err != nil || ok {
		t.Fatalf("expected c to not be an ancestor of a, got ok=%v err=%v", ok, err)
	}
	if ok, err := fs.isAncestor(bID, bID); err != nil || !ok {
		t.Fatalf("expected isAncestor(x, x) to be true (self), got ok=%v err=%v", ok, err)
	}
	if ok, err := fs.isAncestor(rootID, cID); err != nil || !ok {
		t.Fatalf("expected root to be an ancestor of everything, got ok=%v err=%v", ok, err)
	}
}
