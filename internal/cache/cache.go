// Package cache implements the synchronized query cache shared by the
// public read surfaces: event-driven invalidation only, no time-based
// expiry. Reads for the same key coalesce into a single in-flight load, and
// every successful mutation marks the touched keys stale so the next read
// re-fetches.
package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Collection keys. One stable key per content collection, plus a derived
// key per id-addressed practice read.
const (
	KeyPractices         = "practices"
	KeyTestimonials      = "testimonials"
	KeyServices          = "services"
	KeyGallery           = "gallery"
	KeyCarousel          = "carousel"
	KeyExcludedPractices = "excluded_practices"
	KeyContactForms      = "contact_forms"
)

// PracticeKey returns the cache key for a single practice.
func PracticeKey(id string) string {
	return "practice:" + id
}

type entry struct {
	value any
	stale bool
}

// Cache is a process-wide, mutex-guarded key/value cache with read
// coalescing. The zero value is not usable; call New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	gens    map[string]uint64
	subs    map[string][]func(key string)
	group   singleflight.Group
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		gens:    make(map[string]uint64),
		subs:    make(map[string][]func(string)),
	}
}

// Get returns the value for key, calling load when no fresh entry exists.
// Concurrent callers for the same key share one in-flight load. When load
// fails and a previous (possibly stale) value is still present, that value
// is served instead of the error; the error only propagates when there is
// nothing cached at all.
func (c *Cache) Get(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !e.stale {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	value, err, _ := c.group.Do(key, func() (any, error) {
		// Another flight may have refreshed the entry while this caller
		// was waiting on the singleflight slot.
		c.mu.Lock()
		if e, ok := c.entries[key]; ok && !e.stale {
			value := e.value
			c.mu.Unlock()
			return value, nil
		}
		gen := c.gens[key]
		c.mu.Unlock()

		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// An Invalidate that raced the load means value may predate the
		// mutation; store it already stale so the next read re-fetches.
		c.entries[key] = &entry{value: value, stale: c.gens[key] != gen}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if e, ok := c.entries[key]; ok {
			return e.value, nil
		}
		return nil, err
	}
	return value, nil
}

// Invalidate marks the given keys stale and notifies subscribers. The next
// Get for each key bypasses the cached value and re-fetches. A load already
// in flight for a key still lands, but stale, so it cannot mask the
// mutation.
func (c *Cache) Invalidate(keys ...string) {
	var notify []func(string)
	notifyKeys := make([]string, 0, len(keys))

	c.mu.Lock()
	for _, key := range keys {
		c.gens[key]++
		if e, ok := c.entries[key]; ok {
			e.stale = true
		}
		for _, fn := range c.subs[key] {
			notify = append(notify, fn)
			notifyKeys = append(notifyKeys, key)
		}
	}
	c.mu.Unlock()

	// Callbacks run outside the lock so subscribers may call back into the
	// cache.
	for i, fn := range notify {
		fn(notifyKeys[i])
	}
}

// Subscribe registers fn to run whenever key is invalidated.
func (c *Cache) Subscribe(key string, fn func(key string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs[key] = append(c.subs[key], fn)
}

// Load is the typed counterpart of Cache.Get.
func Load[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	value, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value.(T), nil
}
