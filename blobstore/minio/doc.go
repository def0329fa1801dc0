// Package minio provides a blobstore.BlobStore implementation backed by
// MinIO or any S3-compatible object storage.
//
// # Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil { ... }
//
//	store := minioblob.NewStore(client, "my-bucket", "matrices/")
//	m, err := sparse.LoadStore[float64](ctx, store, "adjacency.npz")
//
// # Features
//
//   - Works with any S3-compatible storage (MinIO, Ceph, Garage, SeaweedFS)
//   - Range reads for partial fetches
//   - Streaming uploads for large archives
//   - Air-gap friendly (no AWS dependencies required)
package minio
