package ticktock

import (
	"log/slog"
	"time"

	"github.com/jmgilman/go/errors"

	"github.com/tsroten/ticktock/codec"
	"github.com/tsroten/ticktock/store"
)

const (
	// DefaultMaxSize is the maximum number of entries a shelf holds when
	// Open is called without WithMaxSize.
	DefaultMaxSize = 300

	// DefaultTimeout is the time-to-live applied to written entries when
	// Open is called without WithTimeout.
	DefaultTimeout = 300 * time.Second
)

// Option configures a shelf at Open time.
type Option func(*config)

// config holds the settings collected from options before validation.
type config struct {
	maxSize    int
	noEviction bool
	timeout    time.Duration
	noExpiry   bool
	store      store.Store
	codec      codec.Codec
	clock      Clock
	logger     *slog.Logger
}

func newConfig() *config {
	return &config{
		maxSize: DefaultMaxSize,
		timeout: DefaultTimeout,
		codec:   codec.JSON{},
		clock:   systemClock{},
		logger:  slog.New(slog.DiscardHandler),
	}
}

// validate checks the collected settings and reports the first problem.
func (c *config) validate() error {
	if !c.noEviction && c.maxSize <= 0 {
		return errors.Newf(errors.CodeInvalidConfig, "max size must be positive, got %d", c.maxSize)
	}
	if !c.noExpiry && c.timeout <= 0 {
		return errors.Newf(errors.CodeInvalidConfig, "default timeout must be positive, got %v", c.timeout)
	}
	if c.codec == nil {
		return errors.New(errors.CodeInvalidConfig, "codec cannot be nil")
	}
	if c.clock == nil {
		return errors.New(errors.CodeInvalidConfig, "clock cannot be nil")
	}
	return nil
}

// WithMaxSize sets the maximum number of entries the shelf may hold.
// When the shelf grows past n, least-recently-used entries are evicted.
// n must be positive.
func WithMaxSize(n int) Option {
	return func(c *config) {
		c.maxSize = n
	}
}

// WithoutEviction disables LRU size management entirely; the shelf grows
// without bound.
func WithoutEviction() Option {
	return func(c *config) {
		c.noEviction = true
	}
}

// WithTimeout sets the default time-to-live applied to written entries.
// Entries older than the timeout are treated as absent on their next
// access. d must be positive; per-key overrides are set with
// SetWithTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithoutExpiration disables automatic expiration entirely; entries never
// time out.
func WithoutExpiration() Option {
	return func(c *config) {
		c.noExpiry = true
	}
}

// WithStore injects the backing store the shelf persists to. When set, the
// path argument of Open is ignored and the default bbolt store is not
// opened. The shelf takes ownership of the store and releases it on Close.
func WithStore(s store.Store) Option {
	return func(c *config) {
		c.store = s
	}
}

// WithCodec sets the serialization codec for stored values. The default is
// codec.JSON. Reading entries written with a different codec fails with a
// decode error.
func WithCodec(cd codec.Codec) Option {
	return func(c *config) {
		c.codec = cd
	}
}

// WithClock injects the clock used for expiration decisions. The default
// is the system clock. Intended for deterministic tests.
func WithClock(clk Clock) Option {
	return func(c *config) {
		c.clock = clk
	}
}

// WithLogger sets the logger for shelf events (evictions, lazy
// expirations). The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
