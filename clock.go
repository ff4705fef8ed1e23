package ticktock

import "time"

// Clock supplies the current time to the expiration machinery. The default
// is the system clock; tests inject a deterministic clock with WithClock.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock, backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
