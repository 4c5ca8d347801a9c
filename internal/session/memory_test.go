package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveGetDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	now := time.Now().UTC()
	sess := &Session{Token: "tok-1", UserID: 7, CreatedAt: now, LastSeen: now}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.UserID)

	require.NoError(t, store.Delete(ctx, "tok-1"))

	got, err = store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting an absent token is not an error
	assert.NoError(t, store.Delete(ctx, "tok-1"))
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Save(ctx, &Session{Token: "tok-1", UserID: 1, CreatedAt: now, LastSeen: now}))

	time.Sleep(25 * time.Millisecond)

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreGetRefreshesTTL(t *testing.T) {
	store := NewMemoryStore(40 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Save(ctx, &Session{Token: "tok-1", UserID: 1, CreatedAt: now, LastSeen: now}))

	// keep touching the session at intervals shorter than the TTL
	for i := 0; i < 3; i++ {
		time.Sleep(20 * time.Millisecond)
		got, err := store.Get(ctx, "tok-1")
		require.NoError(t, err)
		require.NotNil(t, got, "session should stay alive while in use")
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	store := &memoryStore{
		sessions: make(map[string]Session),
		ttl:      time.Millisecond,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	stale := time.Now().UTC().Add(-time.Minute)
	store.sessions["old"] = Session{Token: "old", UserID: 1, LastSeen: stale}

	store.sweep()

	assert.Empty(t, store.sessions)
}
