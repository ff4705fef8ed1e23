package store

// Store is a durable byte-oriented key-value map.
//
// All operations are synchronous and complete fully before returning.
// Implementations own any buffering between Write and Flush; a caller that
// needs mutations on disk before Close calls Flush explicitly.
type Store interface {
	// Read returns the record stored under key.
	// Returns ErrNotFound if the key does not exist.
	Read(key string) ([]byte, error)

	// Write stores data under key, replacing any existing record.
	Write(key string, data []byte) error

	// Delete removes the record stored under key.
	// Returns ErrNotFound if the key does not exist.
	Delete(key string) error

	// Contains reports whether a record exists under key.
	Contains(key string) (bool, error)

	// Keys returns every key currently present in the store.
	// The order is provider-defined.
	Keys() ([]string, error)

	// Flush forces any buffered writes to durable storage.
	// Providers that write through may treat this as a no-op.
	Flush() error

	// Close flushes and releases the underlying handle.
	// After Close, every operation returns ErrClosed.
	Close() error
}
