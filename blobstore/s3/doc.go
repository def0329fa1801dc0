// Package s3 provides an S3 implementation of the blobstore.BlobStore
// interface for NPZ archives.
//
// # Usage
//
//	store, err := s3.NewFromConfig(ctx, "my-bucket", "matrices/")
//	if err != nil { ... }
//
//	m, err := sparse.LoadStore[float64](ctx, store, "adjacency.npz")
//
// # Features
//
//   - Range reads for partial fetches
//   - Streaming uploads via the S3 upload manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
