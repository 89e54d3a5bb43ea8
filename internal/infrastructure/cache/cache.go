// Package cache memoizes upstream responses for the lifetime of a process.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/ersonp/dex-core/internal/domain/ports"
)

// KeyFunc maps a resource URL to its cache key.
type KeyFunc func(rawURL string) string

// Stats reports cache effectiveness.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// Cache stores raw response bodies by key. A key is fetched successfully at
// most once; concurrent callers of the same key share one fetch. Failed
// fetches are not stored. There is no eviction.
type Cache struct {
	fetcher ports.ResourceFetcher
	keyFunc KeyFunc

	mu      sync.RWMutex
	entries map[string][]byte
	group   singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// Option configures a Cache.
type Option func(*Cache)

// WithKeyFunc replaces the default URL canonicalization.
func WithKeyFunc(fn KeyFunc) Option {
	return func(c *Cache) {
		c.keyFunc = fn
	}
}

// New creates a cache in front of fetcher.
func New(fetcher ports.ResourceFetcher, opts ...Option) *Cache {
	c := &Cache{
		fetcher: fetcher,
		keyFunc: CanonicalURL,
		entries: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the body for rawURL through the cache, so a Cache can stand
// in wherever a ports.ResourceFetcher is expected.
func (c *Cache) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	return c.GetOrFetch(ctx, c.keyFunc(rawURL), func(ctx context.Context) ([]byte, error) {
		return c.fetcher.Fetch(ctx, rawURL)
	})
}

// GetOrFetch returns the stored value for key, calling fetch on a miss.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	if body, ok := c.get(key); ok {
		c.hits.Add(1)
		return body, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		// Another caller may have stored the key between get and DoChan.
		if body, ok := c.get(key); ok {
			return body, nil
		}
		c.misses.Add(1)
		slog.Debug("cache miss", "key", key)
		body, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = body
		c.mu.Unlock()
		return body, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Cache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	body, ok := c.entries[key]
	return body, ok
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of hit and miss counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.Len(),
	}
}

// Key builds a composite key such as "type:fire".
func Key(kind string, id any) string {
	return fmt.Sprintf("%s:%v", kind, id)
}

// CanonicalURL lower-cases scheme and host, drops the fragment, trims the
// trailing slash and sorts the query, so equivalent resource URLs share an
// entry. Unparseable input is returned unchanged.
func CanonicalURL(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	if len(u.Path) > 1 {
		u.Path = strings.TrimRight(u.Path, "/")
		u.RawPath = ""
	}
	if u.RawQuery != "" {
		u.RawQuery = u.Query().Encode()
	}
	return u.String()
}
