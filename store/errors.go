package store

import "io/fs"

var (
	// ErrNotFound is returned when a key does not exist in the store.
	// Re-exported from io/fs for convenience.
	ErrNotFound = fs.ErrNotExist

	// ErrClosed is returned when an operation is performed on a closed store.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed
)
