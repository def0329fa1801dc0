package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"
)

// CachingStore wraps a remote BlobStore and keeps lz4-compressed
// copies of fetched archives in a local directory. Archives are
// immutable, so a cache hit never revalidates against the remote;
// writes and deletes invalidate the local copy.
type CachingStore struct {
	remote BlobStore
	dir    string
}

// NewCachingStore creates a caching store in front of remote, using
// dir for the local copies.
func NewCachingStore(remote BlobStore, dir string) *CachingStore {
	return &CachingStore{remote: remote, dir: dir}
}

// cachePath keys cache entries by content-independent name hash, so
// arbitrary blob names never escape into filesystem paths.
func (s *CachingStore) cachePath(name string) string {
	sum := sha256.Sum256([]byte(name))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:16])+".lz4")
}

// Open returns the cached archive, fetching and caching it on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	if data, err := s.readCache(name); err == nil {
		return &memoryBlob{data: data}, nil
	}

	blob, err := s.remote.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	data, err := ReadAll(ctx, blob)
	if err != nil {
		return nil, err
	}

	// A failed cache write only costs the next fetch.
	_ = s.writeCache(name, data)

	copied := make([]byte, len(data))
	copy(copied, data)
	return &memoryBlob{data: copied}, nil
}

// Create passes through to the remote store and invalidates the
// local copy.
func (s *CachingStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	if err := s.invalidate(name); err != nil {
		return nil, err
	}
	return s.remote.Create(ctx, name)
}

// Put passes through to the remote store and invalidates the local
// copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.invalidate(name); err != nil {
		return err
	}
	return s.remote.Put(ctx, name, data)
}

// Delete removes the blob remotely and locally.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.invalidate(name); err != nil {
		return err
	}
	return s.remote.Delete(ctx, name)
}

// List passes through to the remote store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.remote.List(ctx, prefix)
}

// Warm prefetches the named archives into the cache, at most
// concurrency fetches in flight. Already-cached names are skipped.
func (s *CachingStore) Warm(ctx context.Context, names []string, concurrency int) error {
	if concurrency <= 0 {
		concurrency = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, name := range names {
		g.Go(func() error {
			if _, err := os.Stat(s.cachePath(name)); err == nil {
				return nil
			}
			blob, err := s.Open(ctx, name)
			if err != nil {
				return err
			}
			return blob.Close()
		})
	}
	return g.Wait()
}

func (s *CachingStore) invalidate(name string) error {
	err := os.Remove(s.cachePath(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *CachingStore) readCache(name string) ([]byte, error) {
	f, err := os.Open(s.cachePath(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		// A corrupt entry behaves like a miss.
		return nil, err
	}
	return data, nil
}

func (s *CachingStore) writeCache(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return err
	}

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	path := s.cachePath(name)
	tmp, err := os.CreateTemp(s.dir, ".cache*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

var _ BlobStore = (*CachingStore)(nil)
