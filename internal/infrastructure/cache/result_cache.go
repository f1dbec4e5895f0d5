// Package cache memoizes assembled professor records for the life of the
// process.
//
// Entries never expire and are never evicted: a name resolved once is served
// from memory until restart. Rosters change rarely and the key space is the
// set of names users actually type, so the cache is left unbounded on purpose.
package cache

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"profassist/internal/domain/entity"
)

type ResultCache struct {
	items *gocache.Cache
}

func NewResultCache() *ResultCache {
	// No default expiration and no janitor goroutine.
	return &ResultCache{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// NormalizeKey trims, lowercases and collapses internal whitespace runs.
func NormalizeKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func (c *ResultCache) Get(key string) (entity.Professor, bool) {
	v, found := c.items.Get(key)
	if !found {
		return entity.Professor{}, false
	}

	professor, ok := v.(entity.Professor)

	return professor, ok
}

// Put stores professor under key. The last write for a key wins.
func (c *ResultCache) Put(key string, professor entity.Professor) {
	c.items.Set(key, professor, gocache.NoExpiration)
}

func (c *ResultCache) Len() int {
	return c.items.ItemCount()
}
