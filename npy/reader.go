package npy

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader provides access to one NPY array: its parsed header and a
// one-shot element stream.
type Reader struct {
	h Header
	r io.Reader
}

// NewReader parses the NPY header from r and returns a Reader
// positioned at the element stream.
func NewReader(r io.Reader) (*Reader, error) {
	h, err := ParseHeader(r)
	if err != nil {
		return nil, err
	}
	return &Reader{h: h, r: r}, nil
}

// Header returns the parsed header.
func (r *Reader) Header() Header { return r.h }

// DType returns the stored element type descriptor.
func (r *Reader) DType() DType { return r.h.DType }

// Shape returns the dimension sizes. Scalars have an empty shape.
func (r *Reader) Shape() []uint64 { return r.h.Shape }

// NDim returns the number of dimensions.
func (r *Reader) NDim() int { return len(r.h.Shape) }

// Order returns the element order of the stored data.
func (r *Reader) Order() Order {
	if r.h.Fortran {
		return Fortran
	}
	return C
}

// Len returns the number of elements.
func (r *Reader) Len() uint64 { return r.h.Len() }

// Close closes the underlying stream if it is closeable.
func (r *Reader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// DTypeMismatchError is returned by Data when the stored dtype cannot
// be materialized as the requested Go type.
type DTypeMismatchError struct {
	// Want is the descriptor of the requested Go type.
	Want DType
	// Got is the stored descriptor.
	Got DType
}

func (e *DTypeMismatchError) Error() string {
	return fmt.Sprintf("npy: cannot read %s data as %s", e.Got, e.Want)
}

// Data materializes the full element stream as a []T. The stored
// dtype must match T's kind and width exactly; both byte orders are
// accepted. Data consumes the stream and can be called once.
func Data[T Scalar](r *Reader) ([]T, error) {
	want := DTypeOf[T]()
	got := r.h.DType
	if got.Kind != want.Kind || got.Size != want.Size {
		return nil, &DTypeMismatchError{Want: want, Got: got}
	}

	var bo binary.ByteOrder = binary.LittleEndian
	if got.Big {
		bo = binary.BigEndian
	}

	out := make([]T, r.h.Len())
	if err := binary.Read(r.r, bo, out); err != nil {
		return nil, fmt.Errorf("npy: reading %d elements: %w", len(out), err)
	}
	return out, nil
}

// ReadBytes materializes a fixed-width byte-string array ('S' kind)
// as its raw, concatenated bytes. Like Data it consumes the stream.
func ReadBytes(r *Reader) ([]byte, error) {
	if r.h.DType.Kind != KindBytes {
		return nil, &DTypeMismatchError{Want: DType{Kind: KindBytes, Size: r.h.DType.Size}, Got: r.h.DType}
	}
	out := make([]byte, r.h.Len()*uint64(r.h.DType.Size))
	if _, err := io.ReadFull(r.r, out); err != nil {
		return nil, fmt.Errorf("npy: reading byte string: %w", err)
	}
	return out, nil
}
