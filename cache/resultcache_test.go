package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/basecall/barctrie"
	"github.com/basecall/barctrie/cache"
)

func newTestTrie(t *testing.T) *barctrie.Trie {
	t.Helper()
	tr, err := barctrie.NewTrie(1, 4)
	require.NoError(t, err)
	for _, s := range []string{"ACGT", "ACGA", "ACCT"} {
		n, err := barctrie.InsertString(tr, s)
		require.NoError(t, err)
		n.Data = s
	}
	return tr
}

func TestGetOrSearchCachesAcrossCalls(t *testing.T) {
	tr := newTestTrie(t)
	rc := cache.NewResultCache(16)
	key := cache.Key{Query: "ACGT", Tau: 1}

	first, err := rc.GetOrSearch(context.Background(), tr, key)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Destroying the trie proves a second identical lookup never touches
	// Search again: it can only be answered from the cached slice.
	barctrie.DestroyTrie(tr, nil)

	second, err := rc.GetOrSearch(context.Background(), tr, key)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGetOrSearchDistinguishesKeyFields(t *testing.T) {
	tr := newTestTrie(t)
	rc := cache.NewResultCache(16)

	exact, err := rc.GetOrSearch(context.Background(), tr, cache.Key{Query: "ACGT", Tau: 0})
	require.NoError(t, err)
	require.Len(t, exact, 1)

	fuzzy, err := rc.GetOrSearch(context.Background(), tr, cache.Key{Query: "ACGT", Tau: 1})
	require.NoError(t, err)
	require.Len(t, fuzzy, 3)
}
