// Package npzgo reads and writes SciPy sparse matrices as NPZ archives.
//
// It is the Go counterpart of scipy.sparse.save_npz and load_npz: the
// archives it writes load cleanly in SciPy, and the archives SciPy
// writes load cleanly here.
//
// # Quick Start
//
// Local files:
//
//	m := &sparse.CSR[float64]{
//	    Shape:   [2]uint64{3, 3},
//	    Data:    []float64{1, 2, 3},
//	    Indices: []uint64{0, 1, 2},
//	    Indptr:  []uint64{0, 1, 2, 3},
//	}
//	_ = sparse.Save[float64]("matrix.npz", m)
//
//	loaded, _ := sparse.Load[float64]("matrix.npz")
//	switch m := loaded.(type) {
//	case *sparse.CSR[float64]:
//	    fmt.Println(m.Indptr)
//	}
//
// Object storage:
//
//	store, _ := s3.NewFromConfig(ctx, "my-bucket", "matrices/")
//	loaded, _ := sparse.LoadStore[float64](ctx, store, "adjacency.npz")
//
// # Packages
//
//   - sparse: the five SciPy variants (COO, CSR, CSC, DIA, BSR) and
//     their NPZ codec
//   - npz: NPZ archives (zip containers of named NPY members)
//   - npy: the NPY array format itself
//   - blobstore: pluggable storage (memory, local files, S3, MinIO,
//     an LZ4 read-through cache)
//
// # Key Features
//
//   - Byte-compatible with scipy.sparse save_npz/load_npz
//   - Generic over all NumPy scalar element types
//   - Automatic i32/i64 index width selection on write, both accepted
//     on read
//   - Optional deflate compression (savez_compressed)
//   - Cloud-native storage via BlobStore with local caching
package npzgo
