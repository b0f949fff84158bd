package store

import "sync"

// Collection is an ordered, append-only set of records guarded by a mutex.
// Ids come from a monotonic counter seeded at construction, so appends on an
// empty collection work and ids never repeat even if records were ever removed.
type Collection[T any] struct {
	mu      sync.RWMutex
	records []T
	nextID  int
	idOf    func(T) int
}

// NewCollection copies seed into a new collection. idOf extracts a record's id;
// the id counter starts at max(seed ids)+1, or 1 for an empty seed.
func NewCollection[T any](seed []T, idOf func(T) int) *Collection[T] {
	next := 1
	for _, r := range seed {
		if id := idOf(r); id >= next {
			next = id + 1
		}
	}

	c := &Collection[T]{
		records: make([]T, len(seed)),
		nextID:  next,
		idOf:    idOf,
	}
	copy(c.records, seed)
	return c
}

// List returns a copy of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the first record whose id matches.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.records {
		if c.idOf(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the records matching pred, in insertion order. The result is
// never nil so it marshals as an empty JSON array.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, r := range c.records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Append stores the record produced by build with the next id and returns it.
// build runs under the write lock so readers never observe a partial append.
func (c *Collection[T]) Append(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := build(c.nextID)
	c.nextID++
	c.records = append(c.records, rec)
	return rec
}
