package profile

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jrslyce/equip-detail/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// Default cache sizing. One entry per active player is cheap; the TTL
// only bounds staleness across multiple backend instances.
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Second
)

// cachedProfileEntry wraps a profile with version metadata for cache invalidation
type cachedProfileEntry struct {
	Version  string          `json:"version"`
	Profile  *domain.Profile `json:"profile"`
	CachedAt time.Time       `json:"cached_at"`
}

// profileCache provides an in-memory LRU cache for profile reads
// with time-based expiration and version-based invalidation to prevent stale data.
type profileCache struct {
	lru *expirable.LRU[string, *cachedProfileEntry]
}

func newProfileCache(size int, ttl time.Duration) *profileCache {
	return &profileCache{
		lru: expirable.NewLRU[string, *cachedProfileEntry](size, nil, ttl),
	}
}

// Get retrieves a profile from the cache.
// Returns (profile, true) if found and version matches.
// Automatically invalidates entries with mismatched versions.
func (c *profileCache) Get(discordUserID string) (*domain.Profile, bool) {
	entry, found := c.lru.Get(discordUserID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(discordUserID)
		return nil, false
	}

	return entry.Profile, true
}

// Set stores a profile in the cache with current schema version.
func (c *profileCache) Set(discordUserID string, profile *domain.Profile) {
	c.lru.Add(discordUserID, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  profile,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a profile from the cache. Called on every mutation.
func (c *profileCache) Invalidate(discordUserID string) {
	c.lru.Remove(discordUserID)
}

// Clear removes all entries from the cache.
func (c *profileCache) Clear() {
	c.lru.Purge()
}
