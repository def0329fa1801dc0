package sparse

import (
	"github.com/hupe1980/npzgo/npy"
	"github.com/hupe1980/npzgo/npz"
)

// Format identifies one of the five SciPy sparse storage variants.
type Format string

const (
	// FormatCOO is COOrdinate format.
	FormatCOO Format = "coo"
	// FormatCSR is Compressed Sparse Row format.
	FormatCSR Format = "csr"
	// FormatCSC is Compressed Sparse Column format.
	FormatCSC Format = "csc"
	// FormatDIA is DIAgonal format.
	FormatDIA Format = "dia"
	// FormatBSR is Block Sparse Row format.
	FormatBSR Format = "bsr"
)

// Matrix is the closed union of the five sparse variants. The only
// implementations are *COO, *CSR, *CSC, *DIA and *BSR.
type Matrix[T npy.Scalar] interface {
	// Format returns the variant's discriminator tag.
	Format() Format
	// Dims returns the matrix dimensions [nrow, ncol].
	Dims() [2]uint64

	encodeNPZ(w *npz.Writer) error
}

// COO is a matrix in COOrdinate format, the raw representation of a
// scipy.sparse.coo_matrix.
type COO[T npy.Scalar] struct {
	// Shape is the matrix dimensions [nrow, ncol].
	Shape [2]uint64
	// Data holds the nnz stored elements.
	Data []T
	// Row holds the row of each stored element.
	Row []uint64
	// Col holds the column of each stored element.
	Col []uint64
}

// Format returns FormatCOO.
func (m *COO[T]) Format() Format { return FormatCOO }

// Dims returns the matrix dimensions [nrow, ncol].
func (m *COO[T]) Dims() [2]uint64 { return m.Shape }

// CSR is a matrix in Compressed Sparse Row format, the raw
// representation of a scipy.sparse.csr_matrix.
type CSR[T npy.Scalar] struct {
	// Shape is the matrix dimensions [nrow, ncol].
	Shape [2]uint64
	// Data holds the nnz stored elements, sorted by row.
	Data []T
	// Indices holds the column of each stored element. Scipy does not
	// guarantee the columns within a row are sorted, and neither does
	// this codec.
	Indices []uint64
	// Indptr partitions Data and Indices into per-row segments.
	// Typically nondecreasing with Indptr[0] == 0 and a final value of
	// nnz, but none of that is validated (see the package doc).
	Indptr []uint64
}

// Format returns FormatCSR.
func (m *CSR[T]) Format() Format { return FormatCSR }

// Dims returns the matrix dimensions [nrow, ncol].
func (m *CSR[T]) Dims() [2]uint64 { return m.Shape }

// CSC is a matrix in Compressed Sparse Column format, the raw
// representation of a scipy.sparse.csc_matrix.
type CSC[T npy.Scalar] struct {
	// Shape is the matrix dimensions [nrow, ncol].
	Shape [2]uint64
	// Data holds the nnz stored elements, sorted by column.
	Data []T
	// Indices holds the row of each stored element. Rows within a
	// column are not necessarily sorted.
	Indices []uint64
	// Indptr partitions Data and Indices into per-column segments,
	// with the same caveats as CSR.Indptr.
	Indptr []uint64
}

// Format returns FormatCSC.
func (m *CSC[T]) Format() Format { return FormatCSC }

// Dims returns the matrix dimensions [nrow, ncol].
func (m *CSC[T]) Dims() [2]uint64 { return m.Shape }

// DIA is a matrix in DIAgonal format, the raw representation of a
// scipy.sparse.dia_matrix.
type DIA[T npy.Scalar] struct {
	// Shape is the matrix dimensions [nrow, ncol].
	Shape [2]uint64
	// Data holds the C-ordered elements of a [len(Offsets), length]
	// block, one row per stored diagonal. The value of length is not
	// constrained by the codec; scipy typically uses one more than the
	// rightmost occupied column, storing each value at the index of
	// its column.
	Data []T
	// Offsets names the diagonal stored in each row of Data. Negative
	// offsets lie below the main diagonal. Any order is allowed.
	Offsets []int64
}

// Format returns FormatDIA.
func (m *DIA[T]) Format() Format { return FormatDIA }

// Dims returns the matrix dimensions [nrow, ncol].
func (m *DIA[T]) Dims() [2]uint64 { return m.Shape }

// NumDiags returns the number of stored diagonals.
func (m *DIA[T]) NumDiags() int { return len(m.Offsets) }

// DiagLength returns the length of each stored diagonal, derived
// from len(Data) and the diagonal count. Zero when no diagonals are
// stored.
func (m *DIA[T]) DiagLength() int {
	if len(m.Offsets) == 0 {
		return 0
	}
	return len(m.Data) / len(m.Offsets)
}

// BSR is a matrix in Block Sparse Row format, the raw representation
// of a scipy.sparse.bsr_matrix.
type BSR[T npy.Scalar] struct {
	// Shape is the matrix dimensions [nrow, ncol]. Scipy requires both
	// to be divisible by the corresponding Blocksize entry, but does
	// not validate it on load; neither does this codec.
	Shape [2]uint64
	// Blocksize is the [rows, cols] dimensions of each dense block.
	Blocksize [2]uint64
	// Data holds the C-ordered elements of a
	// [len(Indices), Blocksize[0], Blocksize[1]] block: the flattened
	// nonzero blocks concatenated in superrow order.
	Data []T
	// Indices holds the supercolumn of each block. Supercolumns within
	// a superrow are not necessarily sorted.
	Indices []uint64
	// Indptr partitions Indices and the outer axis of Data into
	// per-superrow segments, with the same caveats as CSR.Indptr.
	Indptr []uint64
}

// Format returns FormatBSR.
func (m *BSR[T]) Format() Format { return FormatBSR }

// Dims returns the matrix dimensions [nrow, ncol].
func (m *BSR[T]) Dims() [2]uint64 { return m.Shape }

// NumBlocks returns the number of stored blocks.
func (m *BSR[T]) NumBlocks() int { return len(m.Indices) }
