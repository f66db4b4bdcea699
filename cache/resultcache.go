// Package cache provides a bounded LRU in front of barctrie.Search,
// extending vechain-thor/cache's LRU.GetOrLoad wrapper to a whole-result
// cache keyed by query shape. It sits above, and is independent of, the
// trie's own internal miles trail cache: miles accelerates a fresh but
// prefix-sharing query; ResultCache skips Search entirely for an exact
// repeat.
package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru"

	"github.com/basecall/barctrie"
)

// Key identifies one Search call's shape for caching purposes.
type Key struct {
	Query string
	Tau   int
	Start int
	Trail int
}

// defaultMaxHitsPerQuery bounds how many hits a single uncached Search call
// run through GetOrSearch may accumulate, so one attacker-chosen query/tau
// pair can't make an HTTP handler hold an unbounded hit set in memory.
const defaultMaxHitsPerQuery = 10000

// ResultCache is a LRU cache of Search results, extending
// hashicorp/golang-lru the way vechain-thor/cache.LRU does.
type ResultCache struct {
	*lru.Cache
	maxHits int
}

// NewResultCache creates a ResultCache holding up to maxEntries results;
// a maxEntries below 16 is raised to 16.
func NewResultCache(maxEntries int) *ResultCache {
	if maxEntries < 16 {
		maxEntries = 16
	}
	c, _ := lru.New(maxEntries)
	return &ResultCache{Cache: c, maxHits: defaultMaxHitsPerQuery}
}

// GetOrSearch returns the cached hit set for key if present; otherwise it
// calls Search against a capacity-bounded hit collector, caches a copy of
// the resulting hits, and returns that. The search tau/start/trail fields
// of key are passed straight through to Search.
func (c *ResultCache) GetOrSearch(ctx context.Context, t *barctrie.Trie, key Key) ([]*barctrie.Node, error) {
	if v, ok := c.Get(key); ok {
		return v.([]*barctrie.Node), nil
	}
	hits, err := barctrie.Search(ctx, t, key.Query, key.Tau, barctrie.NewBoundedNodeArray(c.maxHits), key.Start, key.Trail)
	if err != nil {
		return nil, err
	}
	result := append([]*barctrie.Node(nil), hits.Slice()...)
	c.Add(key, result)
	if pending := barctrie.CheckTrieErrorAndReset(t); pending != nil {
		return result, pending
	}
	return result, nil
}
