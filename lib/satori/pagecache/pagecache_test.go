package pagecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	cache, err := Open("https://judge.example.com", "")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, cache.Close())
	})
	return cache
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)

	_, ok := cache.Get(ctx, "/contest/select")
	require.False(t, ok)

	cache.Set(ctx, "/contest/select", "<html>contests</html>", time.Minute)
	body, ok := cache.Get(ctx, "/contest/select")
	require.True(t, ok)
	require.Equal(t, "<html>contests</html>", body)
}

func TestExpiredEntryMisses(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)

	cache.Set(ctx, "/contest/select", "stale", -time.Minute)
	_, ok := cache.Get(ctx, "/contest/select")
	require.False(t, ok)
}

func TestKeyNormalization(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)

	cache.Set(ctx, "/contest/1/results?results_limit=10&filter_problem=A", "rows", time.Minute)
	body, ok := cache.Get(ctx, "/contest/1/results?filter_problem=A&results_limit=10")
	require.True(t, ok, "query parameter order must not change the key")
	require.Equal(t, "rows", body)
}

func TestDistinctPathsDistinctEntries(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)

	cache.Set(ctx, "/contest/1/problems", "first", time.Minute)
	cache.Set(ctx, "/contest/2/problems", "second", time.Minute)

	body, ok := cache.Get(ctx, "/contest/1/problems")
	require.True(t, ok)
	require.Equal(t, "first", body)

	body, ok = cache.Get(ctx, "/contest/2/problems")
	require.True(t, ok)
	require.Equal(t, "second", body)
}

func TestPersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cache, err := Open("https://judge.example.com", dir)
	require.NoError(t, err)
	cache.Set(ctx, "/contest/select", "persisted", time.Minute)
	require.NoError(t, cache.Close())

	reopened, err := Open("https://judge.example.com", dir)
	require.NoError(t, err)
	defer reopened.Close()

	body, ok := reopened.Get(ctx, "/contest/select")
	require.True(t, ok)
	require.Equal(t, "persisted", body)
}
