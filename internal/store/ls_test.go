package store

import (
	"errors"
	"testing"
)

func TestLsOrdersChildrenByName(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "zebra")
	mustMkdir(t, fs, "alpha")
	mustWrite(t, fs, "middle.txt", []byte("x"), "")

	children, err := fs.Ls("")
	if err != nil {
		t.Fatalf("Ls failed: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	names := []string{children[0].Name, children[1].Name, children[2].Name}
	want := []string{"alpha", "middle.txt", "zebra"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("children[%d] = %q, want %q (full: %v)", i, names[i], want[i], names)
		}
	}
}

func TestLsOnFileReturnsSingleton(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "file.txt", []byte("x"), "")

	children, err := fs.Ls("file.txt")
	if err != nil {
		t.Fatalf("Ls failed: %v", err)
	}
	if len(children) != 1 {
		t.Fatalf("expected a singleton list, got %d entries", len(children))
	}
	got := children[0]
	if got.Name != "file.txt" {
		t.Fatalf("Name = %q, want %q", got.Name, "file.txt")
	}
	if !got.IsFile() {
		t.Fatalf("expected the listed node to be a file")
	}
}

func TestCdAndPwd(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "a")
	mustMkdir(t, fs, "a/b")

	if err := fs.Cd("a/b"); err != nil {
		t.Fatalf("Cd failed: %v", err)
	}
	pwd, err := fs.Pwd()
	if err != nil {
		t.Fatalf("Pwd failed: %v", err)
	}
	if pwd != "/a/b" {
		t.Fatalf("Pwd = %q, want %q", pwd, "/a/b")
	}

	if err := fs.Cd(".."); err != nil {
		t.Fatalf("Cd(..) failed: %v", err)
	}
	pwd, err = fs.Pwd()
	if err != nil {
		t.Fatalf("Pwd failed: %v", err)
	}
	if pwd != "/a" {
		t.Fatalf("Pwd = %q, want %q", pwd, "/a")
	}
}

func TestCdRejectsFileAndLeavesCwdUnchanged(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "a")
	mustWrite(t, fs, "a/file.txt", []byte("x"), "")

	if err := fs.Cd("a"); err != nil {
		t.Fatalf("Cd(a) failed: %v", err)
	}

	err := fs.Cd("file.txt")
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}

	pwd, err := fs.Pwd()
	if err != nil {
		t.Fatalf("Pwd failed: %v", err)
	}
	if pwd != "/a" {
		t.Fatalf("expected cwd to remain /a after failed cd, got %q", pwd)
	}
}

func TestCdRejectsMissingPath(t *testing.T) {
	fs := newTestFS(t)

	err := fs.Cd("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
