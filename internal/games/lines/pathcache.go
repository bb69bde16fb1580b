package lines

import (
	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

// pathCacheSize bounds the remembered previews. A mouse sweep over a
// 9×9 board touches at most 81 destinations per revision.
const pathCacheSize = 256

// pathCache is an LRU of preview paths keyed by board revision.
// Entries from older revisions are never hit again and age out.
type pathCache struct {
	lru    *simplelru.LRU
	hits   int
	misses int
}

func newPathCache(size int) *pathCache {
	l, err := simplelru.NewLRU(size, nil)
	if err != nil {
		panic(err)
	}
	return &pathCache{lru: l}
}

// Get implements core.PathCache.
func (c *pathCache) Get(key core.PathKey) (core.Path, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return v.(core.Path), true
}

// Add implements core.PathCache.
func (c *pathCache) Add(key core.PathKey, path core.Path) {
	c.lru.Add(key, path)
}

// Purge drops every entry. Revisions restart with a new board.
func (c *pathCache) Purge() {
	c.lru.Purge()
	c.hits, c.misses = 0, 0
}

// Len returns the number of cached paths.
func (c *pathCache) Len() int { return c.lru.Len() }
