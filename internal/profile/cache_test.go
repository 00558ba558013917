package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrslyce/equip-detail/internal/domain"
)

func TestProfileCacheSetGet(t *testing.T) {
	c := newProfileCache(8, time.Minute)

	p := &domain.Profile{DiscordUserID: "user-1", Username: "alice"}
	c.Set("user-1", p)

	got, ok := c.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)
}

func TestProfileCacheMiss(t *testing.T) {
	c := newProfileCache(8, time.Minute)

	_, ok := c.Get("nobody")
	assert.False(t, ok)
}

func TestProfileCacheInvalidate(t *testing.T) {
	c := newProfileCache(8, time.Minute)
	c.Set("user-1", &domain.Profile{DiscordUserID: "user-1"})

	c.Invalidate("user-1")

	_, ok := c.Get("user-1")
	assert.False(t, ok)
}

func TestProfileCacheExpires(t *testing.T) {
	c := newProfileCache(8, 10*time.Millisecond)
	c.Set("user-1", &domain.Profile{DiscordUserID: "user-1"})

	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("user-1")
	assert.False(t, ok)
}

func TestProfileCacheVersionMismatchInvalidates(t *testing.T) {
	c := newProfileCache(8, time.Minute)
	c.lru.Add("user-1", &cachedProfileEntry{
		Version: "0.9",
		Profile: &domain.Profile{DiscordUserID: "user-1"},
	})

	_, ok := c.Get("user-1")
	assert.False(t, ok)

	// Entry was removed, not just skipped.
	_, found := c.lru.Get("user-1")
	assert.False(t, found)
}

func TestProfileCacheClear(t *testing.T) {
	c := newProfileCache(8, time.Minute)
	c.Set("a", &domain.Profile{DiscordUserID: "a"})
	c.Set("b", &domain.Profile{DiscordUserID: "b"})

	c.Clear()

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	assert.False(t, okA)
	assert.False(t, okB)
}
