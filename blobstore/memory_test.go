package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutOpen(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "a.npz", []byte("payload")))

	blob, err := store.Open(ctx, "a.npz")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(7), blob.Size())

	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestMemoryStoreCreate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	w, err := store.Create(ctx, "b.npz")
	require.NoError(t, err)
	_, err = w.Write([]byte("part1"))
	require.NoError(t, err)
	_, err = w.Write([]byte("part2"))
	require.NoError(t, err)

	// Not visible until closed.
	_, err = store.Open(ctx, "b.npz")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())

	blob, err := store.Open(ctx, "b.npz")
	require.NoError(t, err)
	defer blob.Close()

	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("part1part2"), data)
}

func TestMemoryStoreOpenMissing(t *testing.T) {
	_, err := NewMemoryStore().Open(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "m/a", nil))
	require.NoError(t, store.Put(ctx, "m/b", nil))
	require.NoError(t, store.Put(ctx, "other", nil))

	names, err := store.List(ctx, "m/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"m/a", "m/b"}, names)

	require.NoError(t, store.Delete(ctx, "m/a"))
	names, err = store.List(ctx, "m/")
	require.NoError(t, err)
	assert.Equal(t, []string{"m/b"}, names)
}

func TestMemoryStoreOpenIsStable(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "a", []byte("v1")))
	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	defer blob.Close()

	require.NoError(t, store.Put(ctx, "a", []byte("v2")))

	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)
}
