// Package cache holds the in-memory ordered collections mirroring the
// backend's last-known state, one per resource kind. Writes happen only after
// the corresponding remote call succeeded; reads are served to every consumer.
package cache

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when an id selects no cached record. A miss on
// Patch indicates an id-mismatch bug upstream and is surfaced, never
// swallowed.
var ErrNotFound = errors.New("record not found in cache")

// Keyed is any record with a canonical string identifier.
type Keyed interface {
	Key() string
}

// Cache is an ordered in-memory collection for one resource kind. Order is
// meaningful: newly created records are prepended so consumers see
// most-recent-first. The mutex matters: the bulk loader populates caches
// from concurrent goroutines.
type Cache[T Keyed] struct {
	mu    sync.RWMutex
	items []T
}

// New returns an empty cache.
func New[T Keyed]() *Cache[T] {
	return &Cache[T]{}
}

// ReplaceAll swaps the entire contents, keeping the server's order.
func (c *Cache[T]) ReplaceAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Prepend inserts item at the front.
func (c *Cache[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// Patch replaces the record whose key matches id. Exactly one entry changes;
// a miss returns ErrNotFound.
func (c *Cache[T]) Patch(id string, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key() == id {
			c.items[i] = item
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the record whose key matches id.
func (c *Cache[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Clear empties the cache.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Get returns the record with the given key.
func (c *Cache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if c.items[i].Key() == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether a record with the given key is cached.
func (c *Cache[T]) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// All returns a copy of the contents in cache order.
func (c *Cache[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached records.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
