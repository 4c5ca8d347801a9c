package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreSaveGetDelete(t *testing.T) {
	store, _ := newRedisStore(t, time.Minute)
	defer store.Close()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Save(ctx, &Session{Token: "tok-1", UserID: 3, CreatedAt: now, LastSeen: now}))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(3), got.UserID)

	require.NoError(t, store.Delete(ctx, "tok-1"))

	got, err = store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, store.Delete(ctx, "tok-1"))
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	defer store.Close()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Save(ctx, &Session{Token: "tok-1", UserID: 3, CreatedAt: now, LastSeen: now}))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreGetRefreshesTTL(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	defer store.Close()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Save(ctx, &Session{Token: "tok-1", UserID: 3, CreatedAt: now, LastSeen: now}))

	mr.FastForward(45 * time.Second)
	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	// another 45s would have crossed the original deadline
	mr.FastForward(45 * time.Second)
	got, err = store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
