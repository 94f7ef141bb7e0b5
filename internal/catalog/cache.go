package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is how long a fetched catalog stays fresh. Catalog data changes
// rarely, so the window is measured in days.
const DefaultTTL = 72 * time.Hour

// Cached wraps a Provider with a long-TTL cache. The cache is refreshed only
// when a read finds it stale or after an explicit Invalidate, never by
// background events. A failed refresh serves the previous entries if any.
type Cached struct {
	upstream Provider
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	entries   []Entry
	fetchedAt time.Time
}

// NewCached constructs a cache over upstream. A non-positive ttl falls back
// to DefaultTTL.
func NewCached(upstream Provider, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cached{upstream: upstream, ttl: ttl, now: time.Now}
}

// Entries returns cached entries, refreshing from upstream when stale.
func (c *Cached) Entries(ctx context.Context) ([]Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return copyEntries(c.entries), nil
	}

	fresh, err := c.upstream.Entries(ctx)
	if err != nil {
		if c.entries != nil {
			return copyEntries(c.entries), nil
		}
		return nil, fmt.Errorf("catalog refresh: %w", err)
	}

	c.entries = fresh
	c.fetchedAt = c.now()
	return copyEntries(c.entries), nil
}

// Invalidate drops the cached entries so the next read hits upstream.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.fetchedAt = time.Time{}
}

func copyEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
