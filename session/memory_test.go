package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", payload{Name: "a", Count: 2}, time.Minute))

	var got payload
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "a", Count: 2}, got)

	require.NoError(t, store.Delete(ctx, "k"))
	require.ErrorIs(t, store.Get(ctx, "k", &got), ErrNotFound)

	// Deleting again is not an error.
	require.NoError(t, store.Delete(ctx, "k"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "short", payload{Name: "x"}, time.Minute))
	require.NoError(t, store.Set(ctx, "long", payload{Name: "y"}, time.Hour))

	now = now.Add(2 * time.Minute)

	var got payload
	require.ErrorIs(t, store.Get(ctx, "short", &got), ErrNotFound)
	require.NoError(t, store.Get(ctx, "long", &got))
	assert.Equal(t, "y", got.Name)
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "a", payload{}, time.Minute))
	require.NoError(t, store.Set(ctx, "b", payload{}, time.Minute))
	require.NoError(t, store.Set(ctx, "c", payload{}, time.Hour))
	require.Equal(t, 3, store.Len())

	now = now.Add(10 * time.Minute)

	assert.Equal(t, 2, store.Sweep())
	assert.Equal(t, 1, store.Len())
}
