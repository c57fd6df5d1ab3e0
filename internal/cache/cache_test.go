package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPlanet struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = Close() })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedPlanet) func() error {
		return func() error {
			calls++
			*dest = cachedPlanet{ID: 1, Name: "Tatooine"}
			return nil
		}
	}

	var first cachedPlanet
	require.NoError(t, Aside(ctx, PlanetKey(1), &first, CatalogTTL, fetch(&first)))
	assert.Equal(t, "Tatooine", first.Name)
	assert.True(t, mr.Exists("planet:1"))
	assert.Equal(t, CatalogTTL, mr.TTL("planet:1"))

	var second cachedPlanet
	require.NoError(t, Aside(ctx, PlanetKey(1), &second, CatalogTTL, fetch(&second)))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestAside_FetchErrorIsNotCached(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()
	want := errors.New("not found")

	var p cachedPlanet
	err := Aside(ctx, PlanetKey(7), &p, CatalogTTL, func() error { return want })
	assert.ErrorIs(t, err, want)
	assert.False(t, mr.Exists("planet:7"))
}

func TestAside_DisabledCacheCallsFetch(t *testing.T) {
	SetClient(nil)
	calls := 0
	var p cachedPlanet
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(context.Background(), PlanetKey(1), &p, CatalogTTL, func() error {
			calls++
			return nil
		}))
	}
	assert.Equal(t, 2, calls)
}

func TestAside_BrokenCacheFallsBack(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1, DialTimeout: 100 * time.Millisecond}))
	t.Cleanup(func() { _ = Close() })
	mr.Close()

	var p cachedPlanet
	err := Aside(context.Background(), UserKey(3), &p, UserTTL, func() error {
		p = cachedPlanet{ID: 3}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), p.ID)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	require.NoError(t, mr.Set("user:4", `{"id":4}`))
	require.NoError(t, mr.Set("character:2", `{"id":2}`))

	InvalidateUser(context.Background(), 4)
	InvalidateCharacter(context.Background(), 2)

	assert.False(t, mr.Exists("user:4"))
	assert.False(t, mr.Exists("character:2"))
}

func TestInitRedis_EmptyDisablesCache(t *testing.T) {
	InitRedis("")
	assert.Nil(t, GetClient())
}

func TestInitRedis_ConnectsToURL(t *testing.T) {
	mr := miniredis.RunT(t)
	InitRedis("redis://" + mr.Addr() + "/0")
	t.Cleanup(func() { _ = Close() })
	assert.NotNil(t, GetClient())
}
