package store

import (
	"bytes"
	"errors"
	"testing"
)

func TestMkdirRejectsDuplicate(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "alpha")

	err := fs.Mkdir("alpha")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMkdirRejectsMissingParent(t *testing.T) {
	fs := newTestFS(t)

	err := fs.Mkdir("a/b")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteRejectsOverwrite(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "file.txt", []byte("one"), "")

	err := fs.Write("file.txt", []byte("two"), "")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestReadRoundTrip(t *testing.T) {
	fs := newTestFS(t)
	payload := []byte("hello world")
	mustWrite(t, fs, "file.txt", payload, "")

	got, err := fs.Read("file.txt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("Read = %q, want %q", got, payload)
	}
}

func TestReadRejectsDirectory(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "adir")

	_, err := fs.Read("adir")
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
}

func TestRmRejectsRoot(t *testing.T) {
	fs := newTestFS(t)

	err := fs.Rm("/")
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
}

func TestRmCascadesAndResetsCwd(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "a")
	mustMkdir(t, fs, "a/b")
	mustWrite(t, fs, "a/b/file.txt", []byte("x"), "")

	if err := fs.Cd("a/b"); err != nil {
		t.Fatalf("Cd failed: %v", err)
	}

	if err := fs.Rm("a"); err != nil {
		t.Fatalf("Rm(a) failed: %v", err)
	}

	pwd, err := fs.Pwd()
	if err != nil {
		t.Fatalf("Pwd failed: %v", err)
	}
	if pwd != "/" {
		t.Fatalf("expected cwd to reset to root after removing an ancestor, got %q", pwd)
	}

	if _, err := fs.resolve(fs.cwd, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a to be gone, got %v", err)
	}
}

func TestRmSiblingDoesNotResetCwd(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "a")
	mustMkdir(t, fs, "b")

	if err := fs.Cd("a"); err != nil {
		t.Fatalf("Cd failed: %v", err)
	}
	if err := fs.Rm("/b"); err != nil {
		t.Fatalf("Rm(/b) failed: %v", err)
	}

	pwd, err := fs.Pwd()
	if err != nil {
		t.Fatalf("Pwd failed: %v", err)
	}
	if pwd != "/a" {
		t.Fatalf("expected cwd to remain /a, got %q", pwd)
	}
}

func TestMvRenameInPlace(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "old.txt", []byte("data"), "")

	if err := fs.Mv("old.txt", "new.txt"); err != nil {
		t.Fatalf("Mv failed: %v", err)
	}

	if _, err := fs.Read("old.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected old.txt to be gone, got %v", err)
	}
	got, err := fs.Read("new.txt")
	if err != nil {
		t.Fatalf("Read(new.txt) failed: %v", err)
	}
	if string(got) != "data" {
		t.Fatalf("Read(new.txt) = %q, want %q", got, "data")
	}
}

func TestMvIntoExistingDirectoryUsesSourceLeafName(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "dest")
	mustWrite(t, fs, "file.txt", []byte("data"), "")

	if err := fs.Mv("file.txt", "dest/"); err != nil {
		t.Fatalf("Mv into directory failed: %v", err)
	}

	got, err := fs.Read("dest/file.txt")
	if err != nil {
		t.Fatalf("Read(dest/file.txt) failed: %v", err)
	}
	if string(got) != "data" {
		t.Fatalf("Read(dest/file.txt) = %q, want %q", got, "data")
	}
}

// Without a trailing slash, an existing directory named "dest" is the
// literal destination, not a container — the no-overwrite rule rejects it.
// This is spec.md §8 scenario 4 (the trailing-slash destination scenario),
// minus the cp-first setup.
func TestMvIntoExistingDirectoryWithoutTrailingSlashFails(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "dest")
	mustWrite(t, fs, "file.txt", []byte("data"), "")

	err := fs.Mv("file.txt", "dest")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMvRejectsMoveIntoOwnSubtree(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "a")
	mustMkdir(t, fs, "a/b")

	err := fs.Mv("a", "a/b/c")
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind for moving a directory into its own subtree, got %v", err)
	}
}

func TestMvRejectsOverwritingExistingFile(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "src.txt", []byte("a"), "")
	mustWrite(t, fs, "dst.txt", []byte("b"), "")

	err := fs.Mv("src.txt", "dst.txt")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCpDuplicatesFile(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "src.txt", []byte("payload"), "")

	if err := fs.Cp("src.txt", "copy.txt"); err != nil {
		t.Fatalf("Cp failed: %v", err)
	}

	orig, err := fs.Read("src.txt")
	if err != nil {
		t.Fatalf("Read(src.txt) failed: %v", err)
	}
	copy, err := fs.Read("copy.txt")
	if err != nil {
		t.Fatalf("Read(copy.txt) failed: %v", err)
	}
	if !bytes.Equal(orig, copy) {
		t.Fatalf("copy %q != original %q", copy, orig)
	}
}

func TestCpRejectsDirectory(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "adir")

	err := fs.Cp("adir", "bdir")
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
}

func TestCpIntoExistingDirectoryUsesSourceLeafName(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "dest")
	mustWrite(t, fs, "file.txt", []byte("data"), "")

	if err := fs.Cp("file.txt", "dest/"); err != nil {
		t.Fatalf("Cp into directory failed: %v", err)
	}

	got, err := fs.Read("dest/file.txt")
	if err != nil {
		t.Fatalf("Read(dest/file.txt) failed: %v", err)
	}
	if string(got) != "data" {
		t.Fatalf("Read(dest/file.txt) = %q, want %q", got, "data")
	}
}

// Without a trailing slash, an existing directory at the literal
// destination path collides under the no-overwrite rule rather than being
// treated as a container to copy into.
func TestCpIntoExistingDirectoryWithoutTrailingSlashFails(t *testing.T) {
	fs := newTestFS(t)
	mustMkdir(t, fs, "dest")
	mustWrite(t, fs, "file.txt", []byte("data"), "")

	err := fs.Cp("file.txt", "dest")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestVacuumRuns(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "file.txt", []byte("data"), "")
	if err := fs.Rm("file.txt"); err != nil {
		t.Fatalf("Rm failed: %v", err)
	}
	if err := fs.Vacuum(); err != nil {
		t.Fatalf("Vacuum failed: %v", err)
	}
}
