package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	defer c.Close()

	_, hit, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Hour))
	data, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("value"), data)

	require.NoError(t, c.Delete(ctx, "key"))
	_, hit, _ = c.Get(ctx, "key")
	assert.False(t, hit)

	// Deleting twice is fine
	assert.NoError(t, c.Delete(ctx, "key"))
}

func TestFileCacheNoExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "forever", []byte("x"), 0))
	_, hit, err := c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestFileCacheExpired(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "old", []byte("x"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, hit, err := c.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, hit)

	_, statErr := os.Stat(c.path("old"))
	assert.True(t, os.IsNotExist(statErr), "expired entry should be removed")
}

func TestFileCacheCorrupt(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "k", []byte("x"), time.Hour))
	require.NoError(t, os.WriteFile(c.path("k"), []byte("{not json"), 0644))

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, c.Dir())

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), time.Hour))
	}

	n, err := c.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, hit, _ := c.Get(ctx, "a")
	assert.False(t, hit)
}
