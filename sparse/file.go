package sparse

import (
	"context"
	"os"

	"github.com/hupe1980/npzgo/blobstore"
	"github.com/hupe1980/npzgo/npy"
	"github.com/hupe1980/npzgo/npz"
)

// Load reads a sparse matrix from an NPZ file on the local
// filesystem, the counterpart of scipy.sparse.load_npz.
func Load[T npy.Scalar](path string) (Matrix[T], error) {
	a, err := npz.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return Decode[T](a)
}

// Save writes a sparse matrix to an NPZ file on the local
// filesystem, the counterpart of scipy.sparse.save_npz.
func Save[T npy.Scalar](path string, m Matrix[T], optFns ...func(o *npz.WriterOptions)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := npz.NewWriter(f, optFns...)
	if err := Encode[T](m, w); err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadStore reads a sparse matrix from an NPZ archive held in a blob
// store.
func LoadStore[T npy.Scalar](ctx context.Context, store blobstore.BlobStore, name string) (Matrix[T], error) {
	a, err := npz.Open(ctx, store, name)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return Decode[T](a)
}

// SaveStore writes a sparse matrix as an NPZ archive into a blob
// store.
func SaveStore[T npy.Scalar](ctx context.Context, store blobstore.BlobStore, name string, m Matrix[T], optFns ...func(o *npz.WriterOptions)) error {
	blob, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	w := npz.NewWriter(blob, optFns...)
	if err := Encode[T](m, w); err != nil {
		blob.Close()
		return err
	}
	if err := w.Close(); err != nil {
		blob.Close()
		return err
	}
	return blob.Close()
}
