// Package sparse reads and writes SciPy sparse matrices in NPZ
// archives, the format of scipy.sparse.save_npz and load_npz.
//
// All five SciPy storage variants are supported: COOrdinate,
// Compressed Sparse Row, Compressed Sparse Column, DIAgonal and Block
// Sparse Row. An archive stores a 3-byte "format" discriminator, the
// matrix shape, the variant's index arrays and the element data;
// Decode dispatches on the discriminator, Encode writes it first.
//
// # Leniency and round-trip hazards
//
// The codec validates exactly as much as scipy itself does, and no
// more. In particular, on decode:
//
//   - indptr is not required to be sorted, to start at 0, to end at
//     nnz, or even to have length nrow+1 (ncol+1 for CSC);
//   - indices are not required to be sorted within a row, column or
//     superrow;
//   - the matrix shape is not checked for divisibility by the BSR
//     blocksize.
//
// Archives that violate these conventions decode into records that
// are structurally well-formed but logically inconsistent. Rejecting
// them would break compatibility with legitimately produced foreign
// files, so the permissiveness is contract, not oversight.
package sparse
