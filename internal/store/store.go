// Package store implements the core of treedb: a hierarchical tree of
// named nodes, with file payloads routed through a pluggable codec
// registry, persisted in a SQLite database through a single connection and
// serialized by a single process-wide mutex.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver" // registers driver "sqlite3"
	_ "github.com/ncruces/go-sqlite3/embed"   // ships the engine itself, no cgo

	"github.com/treedb/treedb/internal/store/codec"
)

// Node mirrors one row of fs_nodes, returned by ls and by the escape-hatch
// query helpers. ParentID, SizeStored, SizeRaw and Codec are nil for the
// root node (no parent) and/or for directories (no payload).
type Node struct {
	ID         int64
	ParentID   *int64
	Name       string
	Attributes int64
	SizeStored *int64
	SizeRaw    *int64
	Codec      *string
}

// IsFile reports whether the FILE bit is set.
func (n Node) IsFile() bool { return n.Attributes&attrFile != 0 }

// rootID is the node id of the sentinel root directory.
const rootID int64 = 0

// FS is the facade: it owns the one database connection, the one mutex
// that serializes every public operation, the current-working-directory
// cursor, the last-error string, and the codec registry.
//
// Every exported method (other than the codec registry accessors, which
// are deliberately lock-free per the codec reentrancy requirement) holds
// mu for its entire duration except where explicitly documented — the
// payload-encoding step of Write happens before mu is acquired, and the
// payload-decoding step of Read happens between two separate acquisitions,
// so that a codec which calls back into the registry can never deadlock
// against its own caller.
type FS struct {
	db   *sql.DB
	path string

	mu     sync.Mutex
	cwd    int64
	lastErr string

	codecs *codec.Registry
}

// Options configures Open/New beyond the database path and passphrase.
type Options struct {
	// BusyTimeoutMS sets SQLite's busy_timeout pragma (milliseconds). The
	// in-process mutex is the primary concurrency discipline; this is a
	// second line of defense for the brief window between releasing the
	// mutex and the engine releasing its own page lock on commit.
	BusyTimeoutMS int

	// Passphrase, if non-empty, opens the database through the adiantum
	// at-rest-encryption VFS. The byte slice is zeroed when New returns,
	// whether or not it succeeds.
	Passphrase []byte
}

// DefaultOptions returns the Options New uses when none are supplied.
func DefaultOptions() Options {
	return Options{BusyTimeoutMS: 5000}
}

// New opens (creating if necessary) the database file at path and returns
// a ready-to-use facade. See Options for passphrase and timeout handling.
func New(ctx context.Context, path string, opts Options) (fs *FS, err error) {
	defer zeroBytes(opts.Passphrase)

	dsn, err := buildDSN(path, opts)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, engineError("open", err)
	}
	defer func() {
		if err != nil {
			_ = db.Close()
		}
	}()

	// Single connection: the facade's own mutex is the concurrency
	// discipline, not a pool. A pool of size >1 would let two goroutines
	// each grab a connection and race underneath the mutex's intent.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, engineError("ping", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return nil, engineError("enable foreign keys", err)
	}

	if err := bootstrap(db); err != nil {
		return nil, err
	}

	fs = &FS{
		db:     db,
		path:   path,
		cwd:    rootID,
		codecs: codec.NewRegistry(),
	}
	return fs, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// buildDSN composes the ncruces/go-sqlite3 DSN. Foreign keys and a busy
// timeout are requested as connection pragmas so every connection the
// driver opens (even though the pool is capped at one) starts configured;
// PRAGMA foreign_keys is also issued explicitly after open as a second,
// redundant safety net, matching the spec's belt-and-braces stance on the
// engine's own guarantees.
func buildDSN(path string, opts Options) (string, error) {
	if opts.BusyTimeoutMS <= 0 {
		opts.BusyTimeoutMS = DefaultOptions().BusyTimeoutMS
	}
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(ON)&_pragma=busy_timeout(%d)",
		path, opts.BusyTimeoutMS,
	)
	if len(opts.Passphrase) > 0 {
		vfs, err := encryptedVFSName(path, opts.Passphrase)
		if err != nil {
			return "", err
		}
		dsn += "&vfs=" + vfs
	}
	return dsn, nil
}

// Close releases the single database connection. It does not release the
// optional cross-process advisory lock acquired by cmd/treedb's CLI layer
// (that lock is a layer above the store, see cmd/treedb/root.go).
func (fs *FS) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := fs.db.Close(); err != nil {
		return engineError("close", err)
	}
	return nil
}

// Path returns the database file path the facade was opened with.
func (fs *FS) Path() string {
	return fs.path
}

// Error returns the last recorded error message and clears it, matching
// the spec's reader-clears error channel. Most callers should prefer the
// Go error return of the method itself; Error exists for the read side of
// the original C-library-style error channel, kept in exact lockstep with
// the Go error via fail below.
func (fs *FS) Error() string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	s := fs.lastErr
	fs.lastErr = ""
	return s
}

// fail records err (if non-nil) into the last-error channel and returns it
// unchanged, so every operation's failure path is "return fs.fail(err)".
// Callers must already hold mu; fail does not lock.
func (fs *FS) fail(err error) error {
	if err != nil {
		fs.lastErr = err.Error()
	}
	return err
}

// WithDB is the escape hatch: it invokes fn with the raw *sql.DB under the
// facade's mutex, for queries outside this package's designed surface.
// Callers must not retain db beyond fn's return.
func (fs *FS) WithDB(fn func(db *sql.DB) error) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fn(fs.db)
}

// RegisterEncode adds a named encoder to the codec registry. Lookup during
// Write/Read never takes mu (registration happens once, before concurrent
// use begins), but RegisterEncode itself takes mu as a defensive guard
// against a caller registering codecs concurrently with other operations.
func (fs *FS) RegisterEncode(name string, fn codec.Func) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.codecs.RegisterEncode(name, fn)
}

// RegisterDecode adds a named decoder to the codec registry.
func (fs *FS) RegisterDecode(name string, fn codec.Func) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.codecs.RegisterDecode(name, fn)
}

// CallEncode invokes a registered encoder directly, without acquiring mu —
// this is what lets a codec recurse into the registry from within its own
// encode function without deadlocking.
func (fs *FS) CallEncode(name string, payload []byte) ([]byte, error) {
	return fs.codecs.Encode(name, payload)
}

// CallDecode invokes a registered decoder directly, without acquiring mu.
func (fs *FS) CallDecode(name string, payload []byte) ([]byte, error) {
	return fs.codecs.Decode(name, payload)
}
