package services

import (
	"context"
	"testing"
	"time"

	"clinic-portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStoreSaveAndGet(t *testing.T) {
	store := newMemorySessionStore()
	ctx := context.Background()

	session := models.Session{
		ID:          "sess-1",
		UserID:      "patient-1",
		Name:        "Asha",
		AccessToken: "access",
	}
	require.NoError(t, store.Save(ctx, session, time.Minute))

	got, ok := store.Get(ctx, "sess-1")
	require.True(t, ok)
	assert.Equal(t, session, got)
}

func TestMemorySessionStoreGetUnknown(t *testing.T) {
	store := newMemorySessionStore()

	_, ok := store.Get(context.Background(), "ghost")

	assert.False(t, ok)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := newMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Session{ID: "sess-1"}, -time.Second))

	_, ok := store.Get(ctx, "sess-1")
	assert.False(t, ok)
}

func TestMemorySessionStoreDelete(t *testing.T) {
	store := newMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Session{ID: "sess-1"}, time.Minute))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, ok := store.Get(ctx, "sess-1")
	assert.False(t, ok)
}

func TestNewSessionStoreFallsBackToMemory(t *testing.T) {
	// No redis connection in tests.
	require.Nil(t, models.RedisClient)

	store := NewSessionStore()

	_, ok := store.(*memorySessionStore)
	assert.True(t, ok)
}
