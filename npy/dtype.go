package npy

import (
	"fmt"
	"strconv"
)

// Kind classifies the element type of an array, following numpy's
// single-character type codes.
type Kind byte

const (
	// KindBool is a 1-byte boolean ('b').
	KindBool Kind = 'b'
	// KindInt is a signed integer ('i').
	KindInt Kind = 'i'
	// KindUint is an unsigned integer ('u').
	KindUint Kind = 'u'
	// KindFloat is an IEEE 754 float ('f').
	KindFloat Kind = 'f'
	// KindComplex is a pair of floats ('c').
	KindComplex Kind = 'c'
	// KindBytes is a fixed-width byte string ('S').
	KindBytes Kind = 'S'
)

// DType describes the element type of a stored array.
type DType struct {
	// Kind is the numpy type class.
	Kind Kind
	// Size is the width of one element in bytes.
	Size int
	// Big marks big-endian storage. It is meaningless for Kind values
	// without byte order (bool, byte strings).
	Big bool
}

// ParseDType parses a numpy dtype descriptor string such as "<i4",
// ">f8" or "|S3". The native-order marker '=' is treated as
// little-endian, matching the platforms the format is produced on.
func ParseDType(descr string) (DType, error) {
	s := descr
	var big bool
	if len(s) > 0 {
		switch s[0] {
		case '<', '=', '|':
			s = s[1:]
		case '>':
			big = true
			s = s[1:]
		}
	}
	if len(s) < 2 {
		return DType{}, fmt.Errorf("npy: unparseable dtype descriptor %q", descr)
	}

	kind := Kind(s[0])
	switch kind {
	case KindBool, KindInt, KindUint, KindFloat, KindComplex, KindBytes:
	default:
		return DType{}, fmt.Errorf("npy: unsupported dtype kind in descriptor %q", descr)
	}

	size, err := strconv.Atoi(s[1:])
	if err != nil || size <= 0 {
		return DType{}, fmt.Errorf("npy: invalid dtype size in descriptor %q", descr)
	}

	return DType{Kind: kind, Size: size, Big: big}, nil
}

// String renders the descriptor in numpy notation.
func (d DType) String() string {
	order := "<"
	switch {
	case d.Kind == KindBytes || (d.Kind == KindBool && d.Size == 1):
		order = "|"
	case d.Big:
		order = ">"
	}
	return order + string(d.Kind) + strconv.Itoa(d.Size)
}

// Scalar is the set of Go element types the package can serialize.
// Fixed-width byte strings are handled separately via ReadBytes and
// WriteBytes.
type Scalar interface {
	bool |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		complex64 | complex128
}

// DTypeOf returns the little-endian descriptor for a Go scalar type.
func DTypeOf[T Scalar]() DType {
	var z T
	switch any(z).(type) {
	case bool:
		return DType{Kind: KindBool, Size: 1}
	case int8:
		return DType{Kind: KindInt, Size: 1}
	case int16:
		return DType{Kind: KindInt, Size: 2}
	case int32:
		return DType{Kind: KindInt, Size: 4}
	case int64:
		return DType{Kind: KindInt, Size: 8}
	case uint8:
		return DType{Kind: KindUint, Size: 1}
	case uint16:
		return DType{Kind: KindUint, Size: 2}
	case uint32:
		return DType{Kind: KindUint, Size: 4}
	case uint64:
		return DType{Kind: KindUint, Size: 8}
	case float32:
		return DType{Kind: KindFloat, Size: 4}
	case float64:
		return DType{Kind: KindFloat, Size: 8}
	case complex64:
		return DType{Kind: KindComplex, Size: 8}
	case complex128:
		return DType{Kind: KindComplex, Size: 16}
	default:
		// Unreachable: Scalar enumerates exactly the cases above.
		panic(fmt.Sprintf("npy: no dtype for %T", z))
	}
}
