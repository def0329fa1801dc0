package blobstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps a BlobStore and counts remote opens.
type countingStore struct {
	BlobStore
	opens atomic.Int64
}

func (s *countingStore) Open(ctx context.Context, name string) (Blob, error) {
	s.opens.Add(1)
	return s.BlobStore.Open(ctx, name)
}

func TestCachingStoreHitSkipsRemote(t *testing.T) {
	ctx := context.Background()
	remote := &countingStore{BlobStore: NewMemoryStore()}
	require.NoError(t, remote.Put(ctx, "m.npz", []byte("cached archive")))

	store := NewCachingStore(remote, t.TempDir())

	for i := 0; i < 3; i++ {
		blob, err := store.Open(ctx, "m.npz")
		require.NoError(t, err)

		data, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, []byte("cached archive"), data)
		require.NoError(t, blob.Close())
	}

	assert.Equal(t, int64(1), remote.opens.Load())
}

func TestCachingStorePutInvalidates(t *testing.T) {
	ctx := context.Background()
	remote := &countingStore{BlobStore: NewMemoryStore()}
	store := NewCachingStore(remote, t.TempDir())

	require.NoError(t, store.Put(ctx, "m.npz", []byte("v1")))

	blob, err := store.Open(ctx, "m.npz")
	require.NoError(t, err)
	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)
	require.NoError(t, blob.Close())

	require.NoError(t, store.Put(ctx, "m.npz", []byte("v2")))

	blob, err = store.Open(ctx, "m.npz")
	require.NoError(t, err)
	data, err = ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
	require.NoError(t, blob.Close())

	assert.Equal(t, int64(2), remote.opens.Load())
}

func TestCachingStoreOpenMissing(t *testing.T) {
	store := NewCachingStore(NewMemoryStore(), t.TempDir())
	_, err := store.Open(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachingStoreWarm(t *testing.T) {
	ctx := context.Background()
	remote := &countingStore{BlobStore: NewMemoryStore()}
	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		require.NoError(t, remote.Put(ctx, n, []byte("data-"+n)))
	}

	store := NewCachingStore(remote, t.TempDir())
	require.NoError(t, store.Warm(ctx, names, 2))
	assert.Equal(t, int64(4), remote.opens.Load())

	// Warming again touches nothing remotely.
	require.NoError(t, store.Warm(ctx, names, 2))
	assert.Equal(t, int64(4), remote.opens.Load())

	var wg sync.WaitGroup
	for _, n := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			blob, err := store.Open(ctx, n)
			assert.NoError(t, err)
			data, err := ReadAll(ctx, blob)
			assert.NoError(t, err)
			assert.Equal(t, []byte("data-"+n), data)
			assert.NoError(t, blob.Close())
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(4), remote.opens.Load())
}

func TestCachingStoreWarmMissing(t *testing.T) {
	store := NewCachingStore(NewMemoryStore(), t.TempDir())
	err := store.Warm(context.Background(), []string{"missing"}, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
