// Package store maintains client-side mirrors of the remote collections.
//
// Each store exclusively owns one cached collection plus its loading
// flag; mutation happens only through the store's own operations
// (fetch, add, edit/contribute, delete). A fetch replaces the whole
// collection rather than merging, and edits replace the matching entry
// wholesale with the server-returned entity, so server-computed side
// effects never need replicating here.
//
// Overlapping fetches are resolved with a monotonic sequence number: a
// response is applied only if no later-issued response has already been
// applied, so the last user intent wins regardless of response order.
package store

import (
	"sync"

	"karma/internal/log"
)

// Entity is anything with an opaque unique identity.
type Entity interface {
	EntityID() string
}

// Op describes how a collection changed.
type Op string

const (
	OpReplace Op = "replace"
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpRemove  Op = "remove"
)

// Event is delivered to subscribers after every mutation. Items is a
// snapshot of the collection after the change; Entity is set for the
// single-entity operations.
type Event[T Entity] struct {
	Op     Op
	Entity *T
	Items  []T
}

// Collection is the shared state container embedded by the concrete
// stores. It is safe for concurrent readers; writes go through the
// owning store's operations only.
type Collection[T Entity] struct {
	mu      sync.Mutex
	name    string
	items   []T
	loading bool
	seq     uint64
	applied uint64
	subs    map[int]func(Event[T])
	nextSub int
	logger  *log.Logger
}

func newCollection[T Entity](name string, logger *log.Logger) *Collection[T] {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Collection[T]{
		name: name,
		// Loading starts true and flips false when the first fetch
		// settles, success or failure.
		loading: true,
		subs:    make(map[int]func(Event[T])),
		logger:  logger.WithComponent(log.ComponentStore).With(log.FieldCollection, name),
	}
}

// Items returns a copy of the cached collection in server order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Len returns the number of cached entities.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// IsLoading reports whether the first fetch has yet to settle.
func (c *Collection[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Subscribe registers fn for change events and returns an unsubscribe
// function. Events are delivered synchronously after each mutation.
func (c *Collection[T]) Subscribe(fn func(Event[T])) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// beginFetch issues a new fetch sequence number.
func (c *Collection[T]) beginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// settleFetch marks the loading flag false. It runs on every fetch exit
// path, success or failure, and never rolls back.
func (c *Collection[T]) settleFetch() {
	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

// applyFetch replaces the collection with a fetch response, unless a
// later-issued fetch has already been applied. Returns whether the
// response was applied.
func (c *Collection[T]) applyFetch(seq uint64, items []T) bool {
	c.mu.Lock()
	if seq <= c.applied {
		c.mu.Unlock()
		c.logger.Debug("Discarded stale fetch response",
			log.FieldSequence, seq,
			log.FieldItemCount, len(items))
		return false
	}
	c.applied = seq
	c.items = append([]T(nil), items...)
	c.mu.Unlock()

	c.notify(Event[T]{Op: OpReplace, Items: c.Items()})
	return true
}

// prepend inserts a freshly created entity at the head, matching the
// server's newest-first list order.
func (c *Collection[T]) prepend(e T) {
	c.mu.Lock()
	c.items = append([]T{e}, c.items...)
	c.mu.Unlock()

	c.notify(Event[T]{Op: OpAdd, Entity: &e, Items: c.Items()})
}

// replaceByID swaps the entity with the same identity for the
// server-returned one. No-op when the identity is not cached.
func (c *Collection[T]) replaceByID(e T) bool {
	c.mu.Lock()
	replaced := false
	for i := range c.items {
		if c.items[i].EntityID() == e.EntityID() {
			c.items[i] = e
			replaced = true
			break
		}
	}
	c.mu.Unlock()

	if replaced {
		c.notify(Event[T]{Op: OpUpdate, Entity: &e, Items: c.Items()})
	}
	return replaced
}

// removeByID drops the entity with the given identity.
func (c *Collection[T]) removeByID(id string) bool {
	c.mu.Lock()
	var removed *T
	for i := range c.items {
		if c.items[i].EntityID() == id {
			e := c.items[i]
			removed = &e
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if removed != nil {
		c.notify(Event[T]{Op: OpRemove, Entity: removed, Items: c.Items()})
	}
	return removed != nil
}

func (c *Collection[T]) notify(ev Event[T]) {
	c.mu.Lock()
	fns := make([]func(Event[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
