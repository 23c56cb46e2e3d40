package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/exercise-tracker/internal/config"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cache, err := InitServer(context.Background(), config.RedisConnection{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestSetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	expected := []models.UserSummary{{Username: "alice", ID: "1"}, {Username: "bob", ID: "2"}}
	require.NoError(t, cache.Set(ctx, "users:all", expected, time.Minute))

	var actual []models.UserSummary
	found, err := cache.Get(ctx, "users:all", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out []models.UserSummary
	found, err := cache.Get(context.Background(), "no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "users:all", []string{"x"}, time.Minute))
	require.NoError(t, cache.Invalidate(ctx, "users:all"))

	var out []string
	found, err := cache.Get(ctx, "users:all", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "users:all", []string{"x"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var out []string
	found, err := cache.Get(ctx, "users:all", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetCorruptedValue(t *testing.T) {
	cache, mr := setupTestCache(t)
	require.NoError(t, mr.Set("users:all", "{not json"))

	var out []models.UserSummary
	_, err := cache.Get(context.Background(), "users:all", &out)
	assert.Error(t, err)
}

func TestInitServer_Unreachable(t *testing.T) {
	_, err := InitServer(context.Background(), config.RedisConnection{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c Nop

	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	found, err := c.Get(ctx, "k", new(int))
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Invalidate(ctx, "k"))
	n, err := c.Incr(ctx, "gen")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIncr(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	var gen int64
	found, err := cache.Get(ctx, "users:gen", &gen)
	require.NoError(t, err)
	assert.False(t, found)

	n, err := cache.Incr(ctx, "users:gen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = cache.Incr(ctx, "users:gen")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// счетчик читается через Get как JSON-число
	found, err = cache.Get(ctx, "users:gen", &gen)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(2), gen)
}
