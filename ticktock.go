package ticktock

import (
	"log/slog"
	"time"

	"github.com/jmgilman/go/errors"

	"github.com/tsroten/ticktock/codec"
	"github.com/tsroten/ticktock/internal/index"
	"github.com/tsroten/ticktock/internal/policy"
	"github.com/tsroten/ticktock/store"
	"github.com/tsroten/ticktock/store/boltstore"
)

// Shelf is a persistent key-value container with LRU size management and
// per-entry time-to-live expiration.
//
// A Shelf maps string keys to serializable values and survives process
// restarts through its backing store. It keeps itself within a maximum
// size by evicting the least-recently-used entry when it overflows, and it
// treats entries older than their timeout as absent. Expiration is lazy:
// staleness is checked only when a key is accessed, never by a background
// process.
//
// Recency order and deadlines are in-memory bookkeeping only. A reopened
// shelf starts with a fresh recency order and no deadlines; entries
// persisted by an earlier process do not expire until rewritten.
//
// A Shelf is owned by a single goroutine; it is not safe for concurrent
// use without external synchronization.
type Shelf struct {
	store  store.Store
	codec  codec.Codec
	index  *index.Index
	expiry *policy.Expiration // nil disables expiration
	evict  *policy.Eviction   // nil disables eviction
	clock  Clock
	logger *slog.Logger

	// timeout is the default time-to-live for written entries; only
	// meaningful when expiry is non-nil.
	timeout time.Duration

	closed bool
}

// Open opens a shelf persisted at path.
//
// Without options, the shelf stores entries in a bbolt database file at
// path, holds at most DefaultMaxSize entries, and expires entries
// DefaultTimeout after they are written. WithoutEviction and
// WithoutExpiration disable the respective feature; WithStore replaces the
// default backing store, in which case path is ignored.
//
// Keys already present in the backing store are adopted with no deadline
// and an arbitrary recency order. If the adopted keys exceed the maximum
// size, the overflow is evicted immediately.
func Open(path string, opts ...Option) (*Shelf, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	st := cfg.store
	if st == nil {
		if path == "" {
			return nil, errors.New(errors.CodeInvalidConfig, "path cannot be empty without WithStore")
		}
		var err error
		st, err = boltstore.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeDatabase, "failed to open backing store at %s", path)
		}
	}

	s := &Shelf{
		store:  st,
		codec:  cfg.codec,
		index:  index.New(),
		clock:  cfg.clock,
		logger: cfg.logger,
	}
	if !cfg.noExpiry {
		s.expiry = &policy.Expiration{}
		s.timeout = cfg.timeout
	}
	if !cfg.noEviction {
		s.evict = &policy.Eviction{MaxSize: cfg.maxSize}
	}

	keys, err := st.Keys()
	if err != nil {
		st.Close()
		return nil, errors.Wrap(err, errors.CodeDatabase, "failed to list existing keys")
	}
	for _, key := range keys {
		s.index.Touch(key)
	}
	if err := s.evictOverflow(""); err != nil {
		st.Close()
		return nil, err
	}
	return s, nil
}

// Get reads the value stored under key into dest, which must be a pointer
// of a type the shelf's codec can decode into.
//
// Get returns ErrNotFound when the key is absent or expired; an expired
// key is deleted from the shelf before returning. A successful Get marks
// the key as most recently used.
func (s *Shelf) Get(key string, dest any) error {
	if s.closed {
		return ErrClosed
	}
	if !s.index.Contains(key) {
		return ErrNotFound
	}
	if s.stale(key) {
		if err := s.purge(key); err != nil {
			return err
		}
		return ErrNotFound
	}
	s.index.Touch(key)
	data, err := s.store.Read(key)
	if err != nil {
		return errors.Wrapf(err, errors.CodeDatabase, "failed to read key %q", key)
	}
	if err := s.codec.Decode(data, dest); err != nil {
		return errors.Wrapf(err, errors.CodeInvalidInput, "failed to decode value for key %q", key)
	}
	return nil
}

// Set stores value under key with the shelf's default timeout, marking the
// key as most recently used. If the write grows the shelf past its maximum
// size, least-recently-used entries are evicted; a key's own insertion
// never evicts itself.
//
// If deleting an eviction victim from the backing store fails, the error
// propagates with the victim already removed from the in-memory index; the
// orphaned record is re-adopted on the next Open.
func (s *Shelf) Set(key string, value any) error {
	if s.closed {
		return ErrClosed
	}
	data, err := s.codec.Encode(value)
	if err != nil {
		return errors.Wrapf(err, errors.CodeInvalidInput, "failed to encode value for key %q", key)
	}
	return s.put(key, data, s.defaultDeadline())
}

// SetWithTimeout stores value under key like Set, but with an explicit
// time-to-live that overrides the shelf default for this key only. A zero
// or negative timeout makes the entry expire on its very next access.
//
// SetWithTimeout fails on a shelf opened with WithoutExpiration.
func (s *Shelf) SetWithTimeout(key string, value any, timeout time.Duration) error {
	if s.closed {
		return ErrClosed
	}
	if s.expiry == nil {
		return errors.New(errors.CodeInvalidInput, "expiration is disabled for this shelf")
	}
	data, err := s.codec.Encode(value)
	if err != nil {
		return errors.Wrapf(err, errors.CodeInvalidInput, "failed to encode value for key %q", key)
	}
	return s.put(key, data, s.expiry.DeadlineFor(timeout, s.clock.Now()))
}

// Fetch reads the value stored under key into dest, computing and storing
// it first if the key is absent or expired.
//
// compute is called at most once and only on a miss; its result is stored
// with the shelf's default timeout. Errors from compute propagate without
// anything being stored. On both hit and miss, dest receives the value as
// round-tripped through the codec.
func (s *Shelf) Fetch(key string, dest any, compute func() (any, error)) error {
	err := s.Get(key, dest)
	if err == nil || !IsNotFound(err) {
		return err
	}
	value, err := compute()
	if err != nil {
		return err
	}
	data, err := s.codec.Encode(value)
	if err != nil {
		return errors.Wrapf(err, errors.CodeInvalidInput, "failed to encode value for key %q", key)
	}
	if err := s.put(key, data, s.defaultDeadline()); err != nil {
		return err
	}
	return s.codec.Decode(data, dest)
}

// Delete removes key from the shelf. It returns ErrNotFound if the key is
// absent from the backing store. The backing store is updated before the
// shelf's bookkeeping, so a backend failure leaves the entry in place and
// Delete can be retried.
func (s *Shelf) Delete(key string) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.store.Delete(key); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.index.Remove(key)
			return ErrNotFound
		}
		return errors.Wrapf(err, errors.CodeDatabase, "failed to delete key %q", key)
	}
	s.index.Remove(key)
	return nil
}

// Has reports whether key is present and not expired. Unlike Get, Has does
// not refresh the key's recency. An expired key is deleted from the shelf
// and reported as absent.
func (s *Shelf) Has(key string) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	if !s.index.Contains(key) {
		return false, nil
	}
	if s.stale(key) {
		if err := s.purge(key); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// Keys returns the live keys in recency order, least recently used first.
// Expired keys encountered during iteration are deleted from the shelf and
// omitted. Keys does not refresh recency.
func (s *Shelf) Keys() ([]string, error) {
	if s.closed {
		return nil, ErrClosed
	}
	keys := make([]string, 0, s.index.Len())
	for _, key := range s.index.Keys() {
		if s.stale(key) {
			if err := s.purge(key); err != nil {
				return nil, err
			}
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Len returns the number of entries the shelf is tracking. Entries that
// have expired but have not been accessed since are still counted. Len is
// pure bookkeeping and does not fail on a closed shelf; it keeps reporting
// the size the shelf had when it was closed.
func (s *Shelf) Len() int {
	return s.index.Len()
}

// Clear removes every entry from the shelf.
func (s *Shelf) Clear() error {
	if s.closed {
		return ErrClosed
	}
	for _, key := range s.index.Keys() {
		s.index.Remove(key)
		if err := s.store.Delete(key); err != nil && !errors.Is(err, store.ErrNotFound) {
			return errors.Wrapf(err, errors.CodeDatabase, "failed to delete key %q", key)
		}
	}
	return nil
}

// Sync flushes any buffering in the backing store. Call it after mutating
// a value obtained from Get in place; the shelf only learns about writes
// made through Set, SetWithTimeout, or Fetch.
func (s *Shelf) Sync() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.store.Flush(); err != nil {
		return errors.Wrap(err, errors.CodeDatabase, "failed to flush backing store")
	}
	return nil
}

// Close flushes the backing store and releases it. The store handle is
// released exactly once even if the flush fails. Every operation on a
// closed shelf, including a second Close, returns ErrClosed.
func (s *Shelf) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	flushErr := s.store.Flush()
	if err := s.store.Close(); err != nil {
		return errors.Wrap(err, errors.CodeDatabase, "failed to close backing store")
	}
	if flushErr != nil {
		return errors.Wrap(flushErr, errors.CodeDatabase, "failed to flush backing store")
	}
	return nil
}

// defaultDeadline computes the deadline for an entry written now with the
// shelf's default timeout. Zero when expiration is disabled.
func (s *Shelf) defaultDeadline() time.Time {
	if s.expiry == nil {
		return time.Time{}
	}
	return s.expiry.DeadlineFor(s.timeout, s.clock.Now())
}

// stale reports whether key has a deadline that has passed.
func (s *Shelf) stale(key string) bool {
	if s.expiry == nil {
		return false
	}
	deadline, ok := s.index.Deadline(key)
	if !ok {
		return false
	}
	return s.expiry.Stale(deadline, s.clock.Now())
}

// purge removes an expired key from the index and the backing store. The
// store missing the key is not an error; anything else propagates.
func (s *Shelf) purge(key string) error {
	s.index.Remove(key)
	if err := s.store.Delete(key); err != nil && !errors.Is(err, store.ErrNotFound) {
		return errors.Wrapf(err, errors.CodeDatabase, "failed to delete expired key %q", key)
	}
	s.logger.Debug("expired key removed", "key", key)
	return nil
}

// put writes an encoded record and updates the key's metadata, then brings
// the shelf back under its maximum size. inserted is exempt from eviction
// so an insertion can never evict itself.
func (s *Shelf) put(key string, data []byte, deadline time.Time) error {
	if err := s.store.Write(key, data); err != nil {
		return errors.Wrapf(err, errors.CodeDatabase, "failed to write key %q", key)
	}
	s.index.Touch(key)
	s.index.SetDeadline(key, deadline)
	return s.evictOverflow(key)
}

// evictOverflow evicts least-recently-used keys until the shelf is within
// its maximum size. Index removal is not rolled back when the store delete
// fails; see Set.
func (s *Shelf) evictOverflow(inserted string) error {
	if s.evict == nil {
		return nil
	}
	for s.evict.ShouldEvict(s.index.Len()) {
		victim, ok := s.evict.Victim(s.index)
		if !ok || victim == inserted {
			return nil
		}
		s.index.Remove(victim)
		if err := s.store.Delete(victim); err != nil && !errors.Is(err, store.ErrNotFound) {
			return errors.Wrapf(err, errors.CodeDatabase, "failed to delete evicted key %q", victim)
		}
		s.logger.Debug("least recently used key evicted", "key", victim)
	}
	return nil
}
