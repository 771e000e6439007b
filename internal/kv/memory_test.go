package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, NamespaceNotifications, "alice@example.com", `[]`))

	value, err := store.Get(ctx, NamespaceNotifications, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

func TestMemory_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Get(ctx, NamespaceNotifications, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_NamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, NamespaceNotifications, "key", "notifications-value"))
	require.NoError(t, store.Set(ctx, NamespaceMarkers, "key", "markers-value"))

	value, err := store.Get(ctx, NamespaceNotifications, "key")
	require.NoError(t, err)
	assert.Equal(t, "notifications-value", value)

	value, err = store.Get(ctx, NamespaceMarkers, "key")
	require.NoError(t, err)
	assert.Equal(t, "markers-value", value)

	// deleting in one namespace leaves the other untouched
	require.NoError(t, store.Delete(ctx, NamespaceNotifications, "key"))
	_, err = store.Get(ctx, NamespaceNotifications, "key")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, NamespaceMarkers, "key")
	assert.NoError(t, err)
}

func TestMemory_Keys(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, NamespaceNotifications, "alice", "[]"))
	require.NoError(t, store.Set(ctx, NamespaceNotifications, "bob", "[]"))
	require.NoError(t, store.Set(ctx, NamespaceMarkers, "last_motivational", "2026-01-01"))

	keys, err := store.Keys(ctx, NamespaceNotifications)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, keys)

	keys, err = store.Keys(ctx, NamespacePrefs)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemory_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	assert.NoError(t, store.Delete(ctx, NamespaceNotifications, "nobody"))
}
