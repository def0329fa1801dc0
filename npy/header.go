package npy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var magic = [6]byte{0x93, 'N', 'U', 'M', 'P', 'Y'}

var (
	// ErrBadMagic is returned when a stream does not start with the
	// NPY magic bytes.
	ErrBadMagic = errors.New("npy: invalid magic bytes")
	// ErrVersion is returned for format versions other than 1.x-3.x.
	ErrVersion = errors.New("npy: unsupported format version")
)

// Order is the in-memory element order of a multi-dimensional array.
type Order int

const (
	// C is row-major order, the numpy default.
	C Order = iota
	// Fortran is column-major order.
	Fortran
)

func (o Order) String() string {
	if o == Fortran {
		return "fortran"
	}
	return "c"
}

// Header is the parsed metadata record of an NPY stream.
type Header struct {
	// DType is the element type descriptor.
	DType DType
	// Fortran marks column-major element order.
	Fortran bool
	// Shape holds the dimension sizes. A zero-dimensional (scalar)
	// array has an empty shape.
	Shape []uint64
}

// Len returns the number of elements implied by the shape. A scalar
// array has one element.
func (h Header) Len() uint64 {
	n := uint64(1)
	for _, d := range h.Shape {
		n *= d
	}
	return n
}

// ParseHeader consumes and parses the NPY preamble and metadata dict
// from r, leaving r positioned at the first element byte.
func ParseHeader(r io.Reader) (Header, error) {
	var pre [8]byte
	if _, err := io.ReadFull(r, pre[:]); err != nil {
		return Header{}, fmt.Errorf("npy: reading preamble: %w", err)
	}
	if [6]byte(pre[:6]) != magic {
		return Header{}, ErrBadMagic
	}

	major := pre[6]
	var headerLen int
	switch major {
	case 1:
		var n [2]byte
		if _, err := io.ReadFull(r, n[:]); err != nil {
			return Header{}, fmt.Errorf("npy: reading header length: %w", err)
		}
		headerLen = int(binary.LittleEndian.Uint16(n[:]))
	case 2, 3:
		var n [4]byte
		if _, err := io.ReadFull(r, n[:]); err != nil {
			return Header{}, fmt.Errorf("npy: reading header length: %w", err)
		}
		headerLen = int(binary.LittleEndian.Uint32(n[:]))
	default:
		return Header{}, ErrVersion
	}

	dict := make([]byte, headerLen)
	if _, err := io.ReadFull(r, dict); err != nil {
		return Header{}, fmt.Errorf("npy: reading header dict: %w", err)
	}
	return parseDict(string(dict))
}

// parseDict extracts the three well-known keys from the Python dict
// literal numpy writes. Key order is not assumed.
func parseDict(dict string) (Header, error) {
	var h Header

	descr, err := dictValue(dict, "descr")
	if err != nil {
		return Header{}, err
	}
	if len(descr) < 2 || (descr[0] != '\'' && descr[0] != '"') || descr[len(descr)-1] != descr[0] {
		return Header{}, fmt.Errorf("npy: malformed descr value %q", descr)
	}
	h.DType, err = ParseDType(descr[1 : len(descr)-1])
	if err != nil {
		return Header{}, err
	}

	order, err := dictValue(dict, "fortran_order")
	if err != nil {
		return Header{}, err
	}
	switch order {
	case "True":
		h.Fortran = true
	case "False":
		h.Fortran = false
	default:
		return Header{}, fmt.Errorf("npy: malformed fortran_order value %q", order)
	}

	shape, err := dictValue(dict, "shape")
	if err != nil {
		return Header{}, err
	}
	h.Shape, err = parseShapeTuple(shape)
	if err != nil {
		return Header{}, err
	}
	return h, nil
}

// dictValue returns the raw value following 'key': up to the next
// top-level comma or closing brace.
func dictValue(dict, key string) (string, error) {
	quoted := "'" + key + "'"
	i := strings.Index(dict, quoted)
	if i < 0 {
		return "", fmt.Errorf("npy: header dict is missing key %q", key)
	}
	rest := dict[i+len(quoted):]
	j := strings.IndexByte(rest, ':')
	if j < 0 {
		return "", fmt.Errorf("npy: header dict is missing value for key %q", key)
	}
	rest = rest[j+1:]

	depth := 0
	for k := 0; k < len(rest); k++ {
		switch rest[k] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',', '}':
			if depth <= 0 {
				return strings.TrimSpace(rest[:k]), nil
			}
		}
	}
	return strings.TrimSpace(rest), nil
}

func parseShapeTuple(s string) ([]uint64, error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, fmt.Errorf("npy: malformed shape tuple %q", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil, nil // zero-dimensional
	}

	parts := strings.Split(inner, ",")
	shape := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue // trailing comma in 1-tuples
		}
		d, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("npy: malformed shape dimension %q", p)
		}
		shape = append(shape, d)
	}
	return shape, nil
}

// WriteHeader writes the NPY preamble and metadata dict for h.
// The header is padded so element data starts on a 64-byte boundary.
func WriteHeader(w io.Writer, h Header) error {
	var sb strings.Builder
	sb.WriteString("(")
	for i, d := range h.Shape {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(d, 10))
	}
	if len(h.Shape) == 1 {
		sb.WriteString(",")
	}
	sb.WriteString(")")

	fortran := "False"
	if h.Fortran {
		fortran = "True"
	}
	dict := fmt.Sprintf("{'descr': '%s', 'fortran_order': %s, 'shape': %s, }", h.DType, fortran, sb.String())

	// Version 1 uses a 2-byte header length; fall back to version 2
	// for headers that cannot fit (never the case for our callers).
	preambleLen := 10
	version := byte(1)
	if len(dict)+1+preambleLen > 10+0xFFFF {
		preambleLen = 12
		version = 2
	}

	total := preambleLen + len(dict) + 1 // trailing newline
	padding := (64 - total%64) % 64

	buf := make([]byte, 0, total+padding)
	buf = append(buf, magic[:]...)
	buf = append(buf, version, 0)
	dictLen := len(dict) + padding + 1
	if version == 1 {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(dictLen))
	} else {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(dictLen))
	}
	buf = append(buf, dict...)
	for i := 0; i < padding; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')

	_, err := w.Write(buf)
	return err
}
