package sparse

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Occupancy helpers summarize which rows or columns hold at least one
// stored entry. They only consult arrays whose meaning is
// unconditional: indptr is deliberately never interpreted here, since
// the codec does not validate it (see the package doc).

// OccupiedRows returns the set of row indices with stored entries.
func (m *COO[T]) OccupiedRows() *roaring64.Bitmap {
	b := roaring64.New()
	b.AddMany(m.Row)
	return b
}

// OccupiedCols returns the set of column indices with stored entries.
func (m *COO[T]) OccupiedCols() *roaring64.Bitmap {
	b := roaring64.New()
	b.AddMany(m.Col)
	return b
}

// OccupiedCols returns the set of column indices with stored entries.
func (m *CSR[T]) OccupiedCols() *roaring64.Bitmap {
	b := roaring64.New()
	b.AddMany(m.Indices)
	return b
}

// OccupiedRows returns the set of row indices with stored entries.
func (m *CSC[T]) OccupiedRows() *roaring64.Bitmap {
	b := roaring64.New()
	b.AddMany(m.Indices)
	return b
}

// OccupiedCols returns the set of supercolumn indices with stored
// blocks.
func (m *BSR[T]) OccupiedCols() *roaring64.Bitmap {
	b := roaring64.New()
	b.AddMany(m.Indices)
	return b
}
