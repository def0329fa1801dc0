package npy

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Write serializes data as a little-endian, C-ordered NPY array of
// the given shape. The element count implied by shape must equal
// len(data).
func Write[T Scalar](w io.Writer, shape []uint64, data []T) error {
	h := Header{DType: DTypeOf[T](), Shape: shape}
	if h.Len() != uint64(len(data)) {
		return fmt.Errorf("npy: shape %v implies %d elements, have %d", shape, h.Len(), len(data))
	}
	if err := WriteHeader(w, h); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, data)
}

// WriteBytes serializes raw as a fixed-width byte-string array
// ('S' kind) of the given shape and element width. A nil shape writes
// a zero-dimensional scalar.
func WriteBytes(w io.Writer, shape []uint64, width int, raw []byte) error {
	h := Header{DType: DType{Kind: KindBytes, Size: width}, Shape: shape}
	if h.Len()*uint64(width) != uint64(len(raw)) {
		return fmt.Errorf("npy: shape %v of |S%d implies %d bytes, have %d", shape, width, h.Len()*uint64(width), len(raw))
	}
	if err := WriteHeader(w, h); err != nil {
		return err
	}
	_, err := w.Write(raw)
	return err
}
