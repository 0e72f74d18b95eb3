// Package treedb provides a hierarchical virtual filesystem backed by a
// single SQLite file: directories and files live as rows in one tree,
// file payloads pass through a pluggable codec registry, and every
// operation is serialized by a single process-wide mutex plus the
// engine's own busy timeout.
//
// Most callers should use the exported types and functions below directly.
// For queries outside this package's designed surface, FS.WithDB exposes
// the raw *sql.DB under the same mutex.
package treedb

import (
	"context"

	"github.com/treedb/treedb/internal/store"
	"github.com/treedb/treedb/internal/store/codec"
)

// FS is the hierarchical filesystem facade: one open database connection,
// one mutex serializing every operation, a current-working-directory
// cursor, and a codec registry.
type FS = store.FS

// Node mirrors one entry of the tree, as returned by Ls.
type Node = store.Node

// Options configures Open beyond the database path.
type Options = store.Options

// CodecFunc is a pure byte-to-byte transformation, used for both the
// encode and decode side of a registered codec.
type CodecFunc = codec.Func

// Sentinel errors, matchable with errors.Is against any operation's
// returned error.
var (
	ErrNotFound        = store.ErrNotFound
	ErrAlreadyExists   = store.ErrAlreadyExists
	ErrWrongKind       = store.ErrWrongKind
	ErrBrokenInvariant = store.ErrBrokenInvariant
)

// DefaultOptions returns the Options Open uses when none are supplied:
// a 5-second busy timeout and no passphrase.
func DefaultOptions() Options {
	return store.DefaultOptions()
}

// Open opens (creating if necessary) the database file at path and
// returns a ready-to-use filesystem. The root directory always exists
// and cannot be removed.
func Open(ctx context.Context, path string, opts Options) (*FS, error) {
	return store.New(ctx, path, opts)
}
