package store

import "sync"

// Collection is an in-memory table of records keyed by a server-assigned,
// monotonically increasing id. Ids start at 1 and are unique per collection;
// clients never choose them. List order is insertion order.
//
// Fiber runs handlers on separate goroutines, so every operation takes the
// collection lock.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  map[int]T
	order  []int
	nextID int
}

// NewCollection returns an empty collection whose first id will be 1.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items:  make(map[int]T),
		nextID: 1,
	}
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Filter returns the records satisfying keep, in insertion order. A linear
// scan is the right shape at this data volume.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, id := range c.order {
		if keep(c.items[id]) {
			out = append(out, c.items[id])
		}
	}
	return out
}

// Find returns the first record satisfying match, in insertion order.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if match(c.items[id]) {
			return c.items[id], true
		}
	}
	var zero T
	return zero, false
}

// Get returns the record with the given id. Absence is not an error.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// Insert allocates the next id, builds the record with it, and stores it.
func (c *Collection[T]) Insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	item := build(id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

// InsertUnique inserts like Insert unless an existing record matches
// conflict, in which case nothing is stored and ok is false. Check and
// insert happen under one lock acquisition, so two concurrent inserts with
// the same conflicting value cannot both succeed.
func (c *Collection[T]) InsertUnique(conflict func(T) bool, build func(id int) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.order {
		if conflict(c.items[id]) {
			var zero T
			return zero, false
		}
	}

	id := c.nextID
	c.nextID++

	item := build(id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item, true
}

// Update applies the merge function to the stored record and keeps the
// result. Returns false when the id is absent.
func (c *Collection[T]) Update(id int, apply func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	item = apply(item)
	c.items[id] = item
	return item, true
}

// Delete removes the record with the given id. Returns true if a record was
// removed.
func (c *Collection[T]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
