// Package npz reads and writes NPZ archives: zip containers of named
// NPY arrays, the format produced by numpy's savez and consumed by
// the sparse codec.
//
// The zip framing comes from the standard library; the deflate codec
// itself is klauspost/compress, registered on every reader and
// writer. Writers default to stored (uncompressed) members, matching
// scipy.sparse.save_npz without compression; WithCompression switches
// to deflate.
package npz
