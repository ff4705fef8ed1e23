// Package store defines the backing store interface consumed by ticktock.
//
// A Store is a durable mapping from string keys to opaque byte records. The
// shelf never touches the disk itself; it drives a Store through this
// interface, which keeps the persistence format a provider concern. Two
// providers ship with this module:
//
//   - store/boltstore: a single-file store backed by bbolt, used by
//     ticktock.Open by default
//   - store/filestore: a file-per-entry store backed by go-billy, with an
//     in-memory variant for tests
//
// Any other implementation of Store can be injected with
// ticktock.WithStore.
//
// # Error Conventions
//
// Providers report a missing key with ErrNotFound and use of a released
// handle with ErrClosed. Both are re-exported io/fs sentinels so that
// provider errors compose with standard library error handling. All other
// failures are provider-specific and are propagated unchanged.
//
// # Concurrency
//
// A Store handle is owned by exactly one shelf for its lifetime and is
// driven from a single goroutine. Providers are not required to be safe
// for concurrent use.
package store
