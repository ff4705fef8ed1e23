// Package index maintains the in-memory per-key metadata for a shelf: the
// recency-of-use order and the expiry deadline of every live key.
//
// The index holds no values, only metadata. A key is present in the index
// exactly when it is present in the backing store and has not been purged
// as stale. All operations are O(1) except Keys.
package index

import (
	"container/list"
	"time"
)

// entry is the metadata tracked for one live key. A zero deadline means
// the key never expires.
type entry struct {
	key      string
	deadline time.Time
}

// Index is an ordered association from key to entry metadata. The order is
// strict recency of use: touching a key moves it to the most-recently-used
// position, so the least-recently-used key is always at the far end.
//
// The zero value is not usable; call New.
type Index struct {
	elems map[string]*list.Element
	order *list.List // front = most recently used, back = oldest
}

// New creates an empty index.
func New() *Index {
	return &Index{
		elems: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Touch moves key to the most-recently-used position, inserting it with no
// deadline if absent. An existing key keeps its deadline.
func (ix *Index) Touch(key string) {
	if elem, ok := ix.elems[key]; ok {
		ix.order.MoveToFront(elem)
		return
	}
	ix.elems[key] = ix.order.PushFront(&entry{key: key})
}

// Remove deletes the metadata for key. It reports whether the key was
// present.
func (ix *Index) Remove(key string) bool {
	elem, ok := ix.elems[key]
	if !ok {
		return false
	}
	ix.order.Remove(elem)
	delete(ix.elems, key)
	return true
}

// Contains reports whether key is present.
func (ix *Index) Contains(key string) bool {
	_, ok := ix.elems[key]
	return ok
}

// Oldest returns the least-recently-used key without changing the order.
// The second return value is false when the index is empty.
func (ix *Index) Oldest() (string, bool) {
	elem := ix.order.Back()
	if elem == nil {
		return "", false
	}
	return elem.Value.(*entry).key, true
}

// SetDeadline assigns the expiry deadline for key. A zero deadline clears
// expiry. SetDeadline is a no-op if the key is absent.
func (ix *Index) SetDeadline(key string, deadline time.Time) {
	if elem, ok := ix.elems[key]; ok {
		elem.Value.(*entry).deadline = deadline
	}
}

// Deadline returns the expiry deadline for key. The second return value is
// false when the key is absent. A present key with no expiry reports a
// zero deadline.
func (ix *Index) Deadline(key string) (time.Time, bool) {
	elem, ok := ix.elems[key]
	if !ok {
		return time.Time{}, false
	}
	return elem.Value.(*entry).deadline, true
}

// Len returns the number of keys in the index.
func (ix *Index) Len() int {
	return len(ix.elems)
}

// Keys returns every key in recency order, least recently used first.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, ix.order.Len())
	for elem := ix.order.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*entry).key)
	}
	return keys
}
