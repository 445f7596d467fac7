package store

import (
	"sync"

	"github.com/jathow/careertrack/internal/metrics"
)

// seqGuard hands out monotonically increasing fetch sequence numbers so that
// out-of-order responses cannot clobber newer state: a result is applied only
// if no newer fetch has been issued since (latest-issued wins).
type seqGuard struct {
	mu     sync.Mutex
	issued int64
}

func (g *seqGuard) next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	return g.issued
}

func (g *seqGuard) isCurrent(seq int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return seq == g.issued
}

// collection holds the state every entity store shares: the cached list, the
// currently selected entity, the loading flag and the last displayable error.
// Confirmed and optimistic mutations go through the same apply methods so the
// cache converges to the same shape regardless of path.
type collection[T any] struct {
	mu       sync.RWMutex
	name     string
	keyOf    func(T) string
	items    []T
	selected *T
	loading  bool
	errMsg   string
	fetches  seqGuard
}

func newCollection[T any](name string, keyOf func(T) string) *collection[T] {
	return &collection[T]{name: name, keyOf: keyOf}
}

func (c *collection[T]) beginFetch() int64 {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()
	return c.fetches.next()
}

// completeFetch replaces the cached list wholesale; the fetched list is the
// new truth. Stale fulfillments are discarded.
func (c *collection[T]) completeFetch(seq int64, items []T) bool {
	if !c.fetches.isCurrent(seq) {
		metrics.StaleFetchesDiscarded.WithLabelValues(c.name).Inc()
		return false
	}

	c.mu.Lock()
	c.items = items
	c.loading = false
	c.mu.Unlock()

	metrics.StoreRefreshesCounter.WithLabelValues(c.name).Inc()
	return true
}

func (c *collection[T]) failFetch(seq int64, message string) bool {
	if !c.fetches.isCurrent(seq) {
		metrics.StaleFetchesDiscarded.WithLabelValues(c.name).Inc()
		return false
	}

	c.mu.Lock()
	c.loading = false
	c.errMsg = message
	c.mu.Unlock()
	return true
}

func (c *collection[T]) beginMutation() {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *collection[T]) failMutation(message string) {
	c.mu.Lock()
	c.loading = false
	c.errMsg = message
	c.mu.Unlock()
}

// prepend inserts a newly created record most-recent-first.
func (c *collection[T]) prepend(item T) {
	c.mu.Lock()
	c.items = append([]T{item}, c.items...)
	c.loading = false
	c.mu.Unlock()
}

// applyUpdate replaces the matching element by id and mirrors the change
// into selected. A record missing from the local cache is a silent no-op:
// the server call already succeeded, the result just cannot be placed.
func (c *collection[T]) applyUpdate(item T) {
	key := c.keyOf(item)

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.keyOf(c.items[i]) == key {
			c.items[i] = item
			break
		}
	}

	if c.selected != nil && c.keyOf(*c.selected) == key {
		copied := item
		c.selected = &copied
	}
	c.loading = false
}

func (c *collection[T]) remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.keyOf(c.items[i]) == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}

	if c.selected != nil && c.keyOf(*c.selected) == key {
		c.selected = nil
	}
	c.loading = false
}

func (c *collection[T]) setSelected(item T) {
	c.mu.Lock()
	copied := item
	c.selected = &copied
	c.loading = false
	c.mu.Unlock()
}

func (c *collection[T]) get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if c.keyOf(c.items[i]) == key {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

func (c *collection[T]) Selected() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.selected == nil {
		var zero T
		return zero, false
	}
	return *c.selected, true
}

func (c *collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the last displayable error message, empty when none.
func (c *collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}

func (c *collection[T]) ClearError() {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()
}

// Hydrate seeds the cache from a local snapshot without touching loading or
// error state; the next server fetch overwrites it.
func (c *collection[T]) Hydrate(items []T) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}
