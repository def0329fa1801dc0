package sparse

import (
	"errors"

	"github.com/hupe1980/npzgo/npy"
	"github.com/hupe1980/npzgo/npz"
)

// Decode reads a sparse matrix saved by scipy.sparse.save_npz,
// dispatching on the archive's "format" discriminator.
func Decode[T npy.Scalar](a *npz.Archive) (Matrix[T], error) {
	format, err := readFormat(a)
	if err != nil {
		return nil, err
	}

	switch Format(format) {
	case FormatCOO:
		return DecodeCOO[T](a)
	case FormatCSR:
		return DecodeCSR[T](a)
	case FormatCSC:
		return DecodeCSC[T](a)
	case FormatDIA:
		return DecodeDIA[T](a)
	case FormatBSR:
		return DecodeBSR[T](a)
	default:
		return nil, &FormatError{Raw: format}
	}
}

// DecodeCOO reads a sparse coo_matrix saved by scipy.sparse.save_npz.
func DecodeCOO[T npy.Scalar](a *npz.Archive) (*COO[T], error) {
	if err := expectFormat(a, FormatCOO); err != nil {
		return nil, err
	}
	shape, err := readShape(a)
	if err != nil {
		return nil, err
	}
	row, err := readIndices(a, "row")
	if err != nil {
		return nil, err
	}
	col, err := readIndices(a, "col")
	if err != nil {
		return nil, err
	}
	data, err := readData1D[T](a)
	if err != nil {
		return nil, err
	}
	return &COO[T]{Shape: shape, Data: data, Row: row, Col: col}, nil
}

// DecodeCSR reads a sparse csr_matrix saved by scipy.sparse.save_npz.
func DecodeCSR[T npy.Scalar](a *npz.Archive) (*CSR[T], error) {
	if err := expectFormat(a, FormatCSR); err != nil {
		return nil, err
	}
	shape, err := readShape(a)
	if err != nil {
		return nil, err
	}
	indices, err := readIndices(a, "indices")
	if err != nil {
		return nil, err
	}
	indptr, err := readIndices(a, "indptr")
	if err != nil {
		return nil, err
	}
	data, err := readData1D[T](a)
	if err != nil {
		return nil, err
	}
	return &CSR[T]{Shape: shape, Data: data, Indices: indices, Indptr: indptr}, nil
}

// DecodeCSC reads a sparse csc_matrix saved by scipy.sparse.save_npz.
func DecodeCSC[T npy.Scalar](a *npz.Archive) (*CSC[T], error) {
	if err := expectFormat(a, FormatCSC); err != nil {
		return nil, err
	}
	shape, err := readShape(a)
	if err != nil {
		return nil, err
	}
	indices, err := readIndices(a, "indices")
	if err != nil {
		return nil, err
	}
	indptr, err := readIndices(a, "indptr")
	if err != nil {
		return nil, err
	}
	data, err := readData1D[T](a)
	if err != nil {
		return nil, err
	}
	return &CSC[T]{Shape: shape, Data: data, Indices: indices, Indptr: indptr}, nil
}

// DecodeDIA reads a sparse dia_matrix saved by scipy.sparse.save_npz.
func DecodeDIA[T npy.Scalar](a *npz.Archive) (*DIA[T], error) {
	if err := expectFormat(a, FormatDIA); err != nil {
		return nil, err
	}
	shape, err := readShape(a)
	if err != nil {
		return nil, err
	}
	offsets, err := readSignedIndices(a, "offsets")
	if err != nil {
		return nil, err
	}
	data, _, err := readDataND[T](a, 2)
	if err != nil {
		return nil, err
	}
	return &DIA[T]{Shape: shape, Data: data, Offsets: offsets}, nil
}

// DecodeBSR reads a sparse bsr_matrix saved by scipy.sparse.save_npz.
// The blocksize is taken from the stored data array's shape.
func DecodeBSR[T npy.Scalar](a *npz.Archive) (*BSR[T], error) {
	if err := expectFormat(a, FormatBSR); err != nil {
		return nil, err
	}
	shape, err := readShape(a)
	if err != nil {
		return nil, err
	}
	indices, err := readIndices(a, "indices")
	if err != nil {
		return nil, err
	}
	indptr, err := readIndices(a, "indptr")
	if err != nil {
		return nil, err
	}
	data, dataShape, err := readDataND[T](a, 3)
	if err != nil {
		return nil, err
	}
	return &BSR[T]{
		Shape:     shape,
		Blocksize: [2]uint64{dataShape[1], dataShape[2]},
		Data:      data,
		Indices:   indices,
		Indptr:    indptr,
	}, nil
}

// readFormat fetches the zero-dimensional "format" byte-string
// scalar. A discriminator of the wrong rank is as foreign as an
// unknown tag, so both report FormatError.
func readFormat(a *npz.Archive) ([]byte, error) {
	r, err := a.ByName("format")
	if err != nil {
		if errors.Is(err, npz.ErrNotFound) {
			return nil, &MissingArrayError{Name: "format"}
		}
		return nil, err
	}
	defer r.Close()

	raw, err := npy.ReadBytes(r)
	if err != nil {
		return nil, err
	}
	if r.NDim() != 0 {
		return nil, &FormatError{Raw: raw}
	}
	return raw, nil
}

// expectFormat re-verifies the discriminator against a decoder's own
// tag. The outer dispatch has already matched it, but per-variant
// decoders are public and must enforce it on direct calls too.
func expectFormat(a *npz.Archive, want Format) error {
	format, err := readFormat(a)
	if err != nil {
		return err
	}
	if string(format) != string(want) {
		return &FormatMismatchError{Want: want, Got: format}
	}
	return nil
}

// readShape fetches the "shape" pair.
func readShape(a *npz.Archive) ([2]uint64, error) {
	shape, err := readIndices(a, "shape")
	if err != nil {
		return [2]uint64{}, err
	}
	if len(shape) != 2 {
		return [2]uint64{}, &ShapeError{Name: "shape", Got: len(shape)}
	}
	return [2]uint64{shape[0], shape[1]}, nil
}

// readIndices fetches a rank-1 index array stored as i32 or i64,
// widened to the canonical unsigned width. Values are assumed
// nonnegative; scipy stores indices in signed dtypes but never writes
// negative ones.
func readIndices(a *npz.Archive, name string) ([]uint64, error) {
	r, err := fetch(a, name, 1)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	switch dt := r.DType(); {
	case dt.Kind == npy.KindInt && dt.Size == 4:
		xs, err := npy.Data[int32](r)
		if err != nil {
			return nil, err
		}
		return widenToUint64(xs), nil
	case dt.Kind == npy.KindInt && dt.Size == 8:
		xs, err := npy.Data[int64](r)
		if err != nil {
			return nil, err
		}
		return reinterpretUint64(xs), nil
	default:
		return nil, &DTypeError{Name: name, Descr: dt.String()}
	}
}

// readSignedIndices fetches a rank-1 offset array stored as i32 or
// i64, widened to i64. Unlike indices, offsets are genuinely signed.
func readSignedIndices(a *npz.Archive, name string) ([]int64, error) {
	r, err := fetch(a, name, 1)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	switch dt := r.DType(); {
	case dt.Kind == npy.KindInt && dt.Size == 4:
		xs, err := npy.Data[int32](r)
		if err != nil {
			return nil, err
		}
		return widenToInt64(xs), nil
	case dt.Kind == npy.KindInt && dt.Size == 8:
		return npy.Data[int64](r)
	default:
		return nil, &DTypeError{Name: name, Descr: dt.String()}
	}
}

// readData1D fetches the rank-1 "data" array with the caller's
// element type. Element-type failures surface as npy errors,
// unwrapped.
func readData1D[T npy.Scalar](a *npz.Archive) ([]T, error) {
	r, err := fetch(a, "data", 1)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return npy.Data[T](r)
}

// readDataND fetches the multi-dimensional "data" array of DIA and
// BSR matrices, returning its elements in storage order along with
// its declared shape. Only C order is supported.
func readDataND[T npy.Scalar](a *npz.Archive, ndim int) ([]T, []uint64, error) {
	r, err := fetch(a, "data", ndim)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	if r.Order() != npy.C {
		return nil, nil, &OrderError{Name: "data"}
	}
	data, err := npy.Data[T](r)
	if err != nil {
		return nil, nil, err
	}
	return data, r.Shape(), nil
}

// fetch opens a named array and checks its rank.
func fetch(a *npz.Archive, name string, ndim int) (*npy.Reader, error) {
	r, err := a.ByName(name)
	if err != nil {
		if errors.Is(err, npz.ErrNotFound) {
			return nil, &MissingArrayError{Name: name}
		}
		return nil, err
	}
	if r.NDim() != ndim {
		r.Close()
		return nil, &RankError{Name: name, Want: ndim, Got: r.NDim()}
	}
	return r, nil
}
