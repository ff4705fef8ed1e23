package ticktock

import "github.com/jmgilman/go/errors"

var (
	// ErrNotFound is returned when a key is absent from the shelf or was
	// found expired on access. The two cases are indistinguishable to the
	// caller.
	ErrNotFound = errors.New(errors.CodeNotFound, "key not found")

	// ErrClosed is returned by every operation attempted after Close.
	ErrClosed = errors.New(errors.CodeConflict, "shelf is closed")
)

// IsNotFound reports whether err indicates a missing or expired key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsClosed reports whether err indicates the shelf has been closed.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
