// Package cache provides the time-bounded puzzle batch cache used by the
// storage scan. Entries are replaced wholesale on refresh and never partially
// updated; a failed refresh propagates the fetch error rather than serving
// stale data.
package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// DefaultTTL bounds entry freshness when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// Fetcher loads the records for a key, typically via a remote call.
type Fetcher func(ctx context.Context) ([]domain.PuzzleRecord, error)

type entry struct {
	data      []domain.PuzzleRecord
	fetchedAt time.Time
}

// Cache is a TTL cache keyed by composite lookup keys (dataset + batch
// number). Safe for concurrent use; concurrent misses on the same key are
// collapsed into a single in-flight fetch.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	group   singleflight.Group
	entries syncMap
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New builds a Cache. Non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrFetch returns the cached records for key when the entry is younger
// than the TTL; otherwise it invokes fetch, stores the result with a fresh
// timestamp, and returns it. Fetch errors propagate unmodified and leave any
// previous entry untouched (it stays stale and will be refetched).
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch Fetcher) ([]domain.PuzzleRecord, error) {
	if data, ok := c.fresh(key); ok {
		return data, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have refreshed the entry while this one
		// waited on the flight group.
		if data, ok := c.fresh(key); ok {
			return data, nil
		}
		data, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.entries.store(key, entry{data: data, fetchedAt: c.now()})
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.PuzzleRecord), nil
}

func (c *Cache) fresh(key string) ([]domain.PuzzleRecord, bool) {
	e, ok := c.entries.load(key)
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.data, true
}

// Clear empties all entries unconditionally.
func (c *Cache) Clear() { c.entries.clear() }

// Len reports the number of entries, fresh or stale.
func (c *Cache) Len() int { return c.entries.len() }
