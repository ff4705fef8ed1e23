package policy

import "github.com/tsroten/ticktock/internal/index"

// Eviction decides when the index is over capacity and which key to evict.
// The victim is always the least-recently-used key; recency is a strict
// total order, so no tie-breaking is needed.
type Eviction struct {
	// MaxSize is the maximum number of entries the index may hold after
	// any operation completes.
	MaxSize int
}

// ShouldEvict reports whether the index currently exceeds capacity.
func (e *Eviction) ShouldEvict(size int) bool {
	return size > e.MaxSize
}

// Victim returns the key to evict next. The second return value is false
// when the index is empty.
func (e *Eviction) Victim(ix *index.Index) (string, bool) {
	return ix.Oldest()
}
