package npz

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/hupe1980/npzgo/blobstore"
	"github.com/hupe1980/npzgo/npy"
	"github.com/klauspost/compress/flate"
)

// ErrNotFound is returned by ByName when the archive has no member
// array with the requested name.
var ErrNotFound = errors.New("npz: array not found")

// Archive provides read access to the named arrays of an NPZ file.
type Archive struct {
	z      *zip.Reader
	closer io.Closer
}

// NewArchive opens an NPZ archive over an arbitrary random-access
// byte source.
func NewArchive(r io.ReaderAt, size int64) (*Archive, error) {
	z, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("npz: opening archive: %w", err)
	}
	z.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
	return &Archive{z: z}, nil
}

// OpenFile opens an NPZ archive from the local filesystem. The
// returned archive holds the file open until Close.
func OpenFile(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	a, err := NewArchive(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	a.closer = f
	return a, nil
}

// Open materializes the named blob from a store and opens it as an
// NPZ archive. Mappable blobs are used zero-copy.
func Open(ctx context.Context, store blobstore.BlobStore, name string) (*Archive, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		blob.Close()
		return nil, err
	}

	a, err := NewArchive(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		blob.Close()
		return nil, err
	}
	a.closer = blob
	return a, nil
}

// Names returns the member array names, without the ".npy" suffix,
// in lexical order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.z.File))
	for _, f := range a.z.File {
		names = append(names, strings.TrimSuffix(f.Name, ".npy"))
	}
	sort.Strings(names)
	return names
}

// ByName opens the named member array. Both the bare name and the
// on-disk "<name>.npy" form are accepted. The returned reader's Close
// releases the member; readers are opened one at a time by intended
// callers, so no bookkeeping beyond that is done.
func (a *Archive) ByName(name string) (*npy.Reader, error) {
	f := a.lookup(name)
	if f == nil {
		return nil, ErrNotFound
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("npz: opening member %q: %w", f.Name, err)
	}
	r, err := npy.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return r, nil
}

func (a *Archive) lookup(name string) *zip.File {
	for _, f := range a.z.File {
		if f.Name == name || f.Name == name+".npy" {
			return f
		}
	}
	return nil
}

// Close releases the underlying byte source, if the archive owns one.
func (a *Archive) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
