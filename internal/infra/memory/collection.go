// Package memory provides the in-memory implementations of the domain
// repository interfaces. It plays the role a database adapter would play in
// a persistent deployment: the rest of the application only sees the
// interfaces in internal/domain/repository.
package memory

import (
	"sync"

	"fooddesk/internal/domain/repository"

	"github.com/google/uuid"
)

// collection is the storage engine shared by every repository: an
// insertion-ordered slice with a per-collection id counter starting at 1.
// The counter only ever increases, so ids are never reused after deletion.
//
// A single RWMutex guards each collection. Mutation is expected from one
// goroutine (a UI event loop); the guard makes reads from other goroutines
// safe as well.
type collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	nextID  int64
	version uint64
	subs    map[int]func(repository.Mutation)
	nextSub int

	id    func(T) int64
	setID func(T, int64)
}

func newCollection[T any](id func(T) int64, setID func(T, int64)) *collection[T] {
	return &collection[T]{
		nextID: 1,
		subs:   make(map[int]func(repository.Mutation)),
		id:     id,
		setID:  setID,
	}
}

// create assigns the next id and appends the record. The counter advances on
// every call, regardless of later deletions.
func (c *collection[T]) create(v T) {
	c.mu.Lock()
	c.setID(v, c.nextID)
	c.nextID++
	c.items = append(c.items, v)
	m := c.committed(repository.MutationCreated, c.id(v))
	c.mu.Unlock()

	c.notify(m)
}

// list returns a fresh slice holding the current membership in insertion
// order. The records themselves are shared; the membership snapshot is not.
func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// find scans for the record with the given id.
func (c *collection[T]) find(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, v := range c.items {
		if c.id(v) == id {
			return v, true
		}
	}

	var zero T

	return zero, false
}

// update replaces the stored record holding the same id wholesale.
// Reports false when no record with that id exists; the collection is left
// untouched in that case.
func (c *collection[T]) update(v T) bool {
	c.mu.Lock()

	for i, old := range c.items {
		if c.id(old) == c.id(v) {
			c.items[i] = v
			m := c.committed(repository.MutationUpdated, c.id(v))
			c.mu.Unlock()

			c.notify(m)

			return true
		}
	}

	c.mu.Unlock()

	return false
}

// delete removes the record with the given id and reports whether anything
// was removed. Deleting a missing id is a no-op.
func (c *collection[T]) delete(id int64) bool {
	c.mu.Lock()

	for i, old := range c.items {
		if c.id(old) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			m := c.committed(repository.MutationDeleted, id)
			c.mu.Unlock()

			c.notify(m)

			return true
		}
	}

	c.mu.Unlock()

	return false
}

// filter returns the records matching pred, in insertion order.
func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, v := range c.items {
		if pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// contains reports whether any record matches pred.
func (c *collection[T]) contains(pred func(T) bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, v := range c.items {
		if pred(v) {
			return true
		}
	}

	return false
}

// Version returns the number of mutations committed so far.
func (c *collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.version
}

// Subscribe registers fn for future mutations and returns its cancel
// function.
func (c *collection[T]) Subscribe(fn func(repository.Mutation)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.nextSub
	c.nextSub++
	c.subs[key] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		delete(c.subs, key)
	}
}

// committed bumps the version under the write lock and builds the mutation
// record for the change that just landed.
func (c *collection[T]) committed(kind repository.MutationKind, entityID int64) repository.Mutation {
	c.version++

	return repository.Mutation{
		EventID:  uuid.New(),
		Kind:     kind,
		EntityID: entityID,
	}
}

// notify fans the mutation out to subscribers, synchronously, outside the
// lock so a subscriber may re-read the collection.
func (c *collection[T]) notify(m repository.Mutation) {
	c.mu.RLock()
	fns := make([]func(repository.Mutation), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn(m)
	}
}
