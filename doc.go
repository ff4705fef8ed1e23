// Package ticktock provides a persistent key-value shelf with
// least-recently-used size management and automatic data timeout.
//
// A Shelf behaves like a durable map from string keys to serializable
// values. On top of ordinary map semantics it enforces two policies: when
// the shelf grows past its maximum size, the least-recently-used entry is
// evicted; and entries older than their time-to-live are treated as absent
// the next time they are accessed. Values are persisted through a
// pluggable backing store and serialization codec, so the shelf itself
// never performs disk I/O.
//
// # Basic Usage
//
// Open a shelf backed by a database file, store a value, and read it back:
//
//	shelf, err := ticktock.Open("cache.db")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer shelf.Close()
//
//	if err := shelf.Set("greeting", "hello"); err != nil {
//		log.Fatal(err)
//	}
//
//	var greeting string
//	if err := shelf.Get("greeting", &greeting); err != nil {
//		log.Fatal(err)
//	}
//
// # Configuration
//
// Shelves are configured with functional options at Open time. The
// defaults hold at most DefaultMaxSize entries and expire entries
// DefaultTimeout after they are written:
//
//	shelf, err := ticktock.Open("cache.db",
//		ticktock.WithMaxSize(1000),
//		ticktock.WithTimeout(time.Hour),
//	)
//
// Either policy can be disabled structurally:
//
//	// Grows without bound, entries never expire.
//	shelf, err := ticktock.Open("cache.db",
//		ticktock.WithoutEviction(),
//		ticktock.WithoutExpiration(),
//	)
//
// # Cache Population
//
// Fetch implements the compute-on-miss idiom: it returns the stored value
// when the key is live and otherwise computes, stores, and returns a fresh
// one:
//
//	var report Report
//	err := shelf.Fetch("daily-report", &report, func() (any, error) {
//		return buildReport()
//	})
//
// # Per-Key Timeouts
//
// SetWithTimeout overrides the shelf's default time-to-live for a single
// key without changing the default:
//
//	err := shelf.SetWithTimeout("session", token, 15*time.Minute)
//
// # Expiration Model
//
// Expiration is lazy. Nothing scans the shelf in the background; an
// expired entry is detected and removed only when it is next accessed by
// Get, Has, Fetch, or Keys. Consequently Len counts entries whose deadline
// has already passed but which have not been accessed since, and a key's
// expiry is always checked before its recency is refreshed, so a stale key
// cannot be kept alive by reading it.
//
// Recency order and deadlines live in memory only. Reopening a shelf
// adopts the persisted keys with no deadlines and a fresh recency order.
//
// # Backing Stores and Codecs
//
// By default Open persists entries in a bbolt database file at the given
// path and serializes values as JSON. Both collaborators are pluggable:
//
//	shelf, err := ticktock.Open("",
//		ticktock.WithStore(filestore.NewMemory()),
//		ticktock.WithCodec(codec.Gob{}),
//	)
//
// See the store and codec packages for the interfaces and the provided
// implementations.
//
// # Error Handling
//
// Operations return ErrNotFound for missing or expired keys and ErrClosed
// after Close; both are matched with IsNotFound and IsClosed. Failures
// from the backing store or the codec are wrapped with context and
// propagated unchanged, never retried or swallowed.
//
// # Concurrency
//
// A Shelf assumes exclusive ownership by a single goroutine, mirroring its
// exclusive ownership of the backing store handle. Wrap it with external
// synchronization if multiple goroutines need access.
package ticktock
