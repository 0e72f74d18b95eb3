package store

import (
	"errors"
	"fmt"
)

// Error taxonomy. These are sentinels so callers can use errors.Is against
// a stable category instead of matching message text.
var (
	// ErrNotFound means the path resolver could not walk to a node.
	ErrNotFound = errors.New("can't find path")

	// ErrAlreadyExists means a unique constraint on (parent_id, name) was violated.
	ErrAlreadyExists = errors.New("already exists")

	// ErrWrongKind means an operation targeted a node of the wrong kind:
	// cd into a file, cp of a directory, or a move/copy target that is
	// already an existing file.
	ErrWrongKind = errors.New("wrong kind")

	// ErrBrokenInvariant means a blob row was missing for a FILE node, or
	// a decoded payload's length didn't match the recorded size_raw. The
	// operation that detects this still returns its best-effort result.
	ErrBrokenInvariant = errors.New("broken invariant")
)

// engineError wraps an error from the underlying SQL engine with the
// "SQL Error: " prefix required by the error taxonomy.
func engineError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("SQL Error: %s: %w", op, err)
}

// notFoundf builds an ErrNotFound with detail, still matchable via errors.Is.
func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// wrongKindf builds an ErrWrongKind with detail.
func wrongKindf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrWrongKind)
}

// alreadyExistsf builds an ErrAlreadyExists with detail.
func alreadyExistsf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrAlreadyExists)
}

// brokenInvariantf builds an ErrBrokenInvariant with detail.
func brokenInvariantf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBrokenInvariant)
}
