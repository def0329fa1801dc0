package sparse

import (
	"fmt"

	"github.com/hupe1980/npzgo/npy"
	"github.com/hupe1980/npzgo/npz"
)

// Encode writes a sparse matrix into an NPZ archive, like
// scipy.sparse.save_npz. The writer is not closed; callers that own
// it call w.Close after encoding.
func Encode[T npy.Scalar](m Matrix[T], w *npz.Writer) error {
	return m.encodeNPZ(w)
}

// EncodeNPZ writes the matrix in coo_matrix layout: format, shape,
// row, col, data.
func (m *COO[T]) EncodeNPZ(w *npz.Writer) error {
	if err := writeFormat(w, FormatCOO); err != nil {
		return err
	}
	if err := writeShape(w, m.Shape); err != nil {
		return err
	}
	if err := writeIndices(w, "row", signedView(m.Row)); err != nil {
		return err
	}
	if err := writeIndices(w, "col", signedView(m.Col)); err != nil {
		return err
	}
	return writeData(w, m.Data, []uint64{uint64(len(m.Data))})
}

func (m *COO[T]) encodeNPZ(w *npz.Writer) error { return m.EncodeNPZ(w) }

// EncodeNPZ writes the matrix in csr_matrix layout: format, shape,
// indices, indptr, data.
func (m *CSR[T]) EncodeNPZ(w *npz.Writer) error {
	if err := writeFormat(w, FormatCSR); err != nil {
		return err
	}
	if err := writeShape(w, m.Shape); err != nil {
		return err
	}
	if err := writeIndices(w, "indices", signedView(m.Indices)); err != nil {
		return err
	}
	if err := writeIndices(w, "indptr", signedView(m.Indptr)); err != nil {
		return err
	}
	return writeData(w, m.Data, []uint64{uint64(len(m.Data))})
}

func (m *CSR[T]) encodeNPZ(w *npz.Writer) error { return m.EncodeNPZ(w) }

// EncodeNPZ writes the matrix in csc_matrix layout: format, shape,
// indices, indptr, data.
func (m *CSC[T]) EncodeNPZ(w *npz.Writer) error {
	if err := writeFormat(w, FormatCSC); err != nil {
		return err
	}
	if err := writeShape(w, m.Shape); err != nil {
		return err
	}
	if err := writeIndices(w, "indices", signedView(m.Indices)); err != nil {
		return err
	}
	if err := writeIndices(w, "indptr", signedView(m.Indptr)); err != nil {
		return err
	}
	return writeData(w, m.Data, []uint64{uint64(len(m.Data))})
}

func (m *CSC[T]) encodeNPZ(w *npz.Writer) error { return m.EncodeNPZ(w) }

// EncodeNPZ writes the matrix in dia_matrix layout: format, shape,
// offsets, data.
//
// Panics if len(Data) is not a multiple of len(Offsets): that is a
// record constructed outside the codec's invariants, a caller bug
// rather than recoverable input.
func (m *DIA[T]) EncodeNPZ(w *npz.Writer) error {
	if err := writeFormat(w, FormatDIA); err != nil {
		return err
	}
	if err := writeShape(w, m.Shape); err != nil {
		return err
	}
	if err := writeIndices(w, "offsets", m.Offsets); err != nil {
		return err
	}

	length := uint64(0)
	switch {
	case len(m.Offsets) > 0:
		if len(m.Data)%len(m.Offsets) != 0 {
			panic(fmt.Sprintf("sparse: DIA data length %d is not a multiple of the %d stored diagonals", len(m.Data), len(m.Offsets)))
		}
		length = uint64(len(m.Data) / len(m.Offsets))
	case len(m.Data) != 0:
		panic(fmt.Sprintf("sparse: DIA data has %d elements but no stored diagonals", len(m.Data)))
	}
	return writeData(w, m.Data, []uint64{length, uint64(len(m.Offsets))})
}

func (m *DIA[T]) encodeNPZ(w *npz.Writer) error { return m.EncodeNPZ(w) }

// EncodeNPZ writes the matrix in bsr_matrix layout: format, shape,
// indices, indptr, data.
//
// Panics if len(Data) != len(Indices)*Blocksize[0]*Blocksize[1], for
// the same reason as DIA.EncodeNPZ.
func (m *BSR[T]) EncodeNPZ(w *npz.Writer) error {
	if err := writeFormat(w, FormatBSR); err != nil {
		return err
	}
	if err := writeShape(w, m.Shape); err != nil {
		return err
	}
	if err := writeIndices(w, "indices", signedView(m.Indices)); err != nil {
		return err
	}
	if err := writeIndices(w, "indptr", signedView(m.Indptr)); err != nil {
		return err
	}

	if want := uint64(len(m.Indices)) * m.Blocksize[0] * m.Blocksize[1]; uint64(len(m.Data)) != want {
		panic(fmt.Sprintf("sparse: BSR data length %d != %d blocks of %dx%d", len(m.Data), len(m.Indices), m.Blocksize[0], m.Blocksize[1]))
	}
	return writeData(w, m.Data, []uint64{uint64(len(m.Indices)), m.Blocksize[0], m.Blocksize[1]})
}

func (m *BSR[T]) encodeNPZ(w *npz.Writer) error { return m.EncodeNPZ(w) }

// writeFormat writes the 3-byte discriminator scalar. It is always
// the first member, part of the on-disk contract.
func writeFormat(w *npz.Writer, f Format) error {
	cw, err := w.Create("format")
	if err != nil {
		return err
	}
	return npy.WriteBytes(cw, nil, len(f), []byte(f))
}

// writeShape writes the dimension pair with the default i64 dtype.
func writeShape(w *npz.Writer, shape [2]uint64) error {
	cw, err := w.Create("shape")
	if err != nil {
		return err
	}
	return npy.Write(cw, []uint64{2}, []int64{int64(shape[0]), int64(shape[1])})
}

// writeIndices writes an index or offset array as i32 when every
// value fits, i64 otherwise. Space optimization only: decoders accept
// either width unconditionally.
func writeIndices(w *npz.Writer, name string, vals []int64) error {
	cw, err := w.Create(name)
	if err != nil {
		return err
	}
	shape := []uint64{uint64(len(vals))}
	if fitsInt32(vals) {
		return npy.Write(cw, shape, narrowToInt32(vals))
	}
	return npy.Write(cw, shape, vals)
}

// writeData writes the element array, always the final member.
func writeData[T npy.Scalar](w *npz.Writer, data []T, shape []uint64) error {
	cw, err := w.Create("data")
	if err != nil {
		return err
	}
	return npy.Write(cw, shape, data)
}
