// Package policy holds the decision logic for the shelf's two
// self-management features: TTL expiration and LRU eviction.
//
// Policies are pure decision-makers: they inspect metadata and the current
// time and say what should happen. The shelf owns all side effects and
// composes policies structurally, so a nil policy pointer disables the
// feature rather than a sentinel configuration value.
package policy

import "time"

// Expiration decides whether an entry's deadline has passed.
type Expiration struct{}

// Stale reports whether an entry with the given deadline is expired at
// now. A zero deadline means the entry never expires.
func (Expiration) Stale(deadline, now time.Time) bool {
	if deadline.IsZero() {
		return false
	}
	return !now.Before(deadline)
}

// DeadlineFor computes the absolute deadline for an entry written at now
// with the given timeout. A zero or negative timeout yields a deadline
// that has already passed, making the entry stale on its next access.
func (Expiration) DeadlineFor(timeout time.Duration, now time.Time) time.Time {
	return now.Add(timeout)
}
