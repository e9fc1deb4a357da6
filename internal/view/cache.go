package view

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache holds rendered listing pages keyed by route and query string. The
// mutation pipeline reports stale routes; Invalidate drops every cached
// rendering under those routes so the next read recomputes it.
type Cache struct {
	entries *lru.Cache[string, []byte]
}

// NewCache creates a rendered-view cache holding up to maxEntries pages.
func NewCache(maxEntries int) (*Cache, error) {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	entries, err := lru.New[string, []byte](maxEntries)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

func cacheKey(route, query string) string {
	return route + "?" + query
}

// Get returns the cached rendering for the route and query, if any.
func (c *Cache) Get(route, query string) ([]byte, bool) {
	return c.entries.Get(cacheKey(route, query))
}

// Put stores a rendered page for the route and query.
func (c *Cache) Put(route, query string, html []byte) {
	c.entries.Add(cacheKey(route, query), html)
}

// Invalidate drops every cached rendering under the given routes. Unknown
// routes are a no-op.
func (c *Cache) Invalidate(routes ...string) {
	if len(routes) == 0 {
		return
	}
	for _, key := range c.entries.Keys() {
		for _, route := range routes {
			if strings.HasPrefix(key, route+"?") {
				c.entries.Remove(key)
				break
			}
		}
	}
}

// Len returns the number of cached pages.
func (c *Cache) Len() int {
	return c.entries.Len()
}
