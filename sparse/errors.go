package sparse

import (
	"fmt"
	"strings"
)

// MissingArrayError is returned when a required named array is absent
// from the archive.
type MissingArrayError struct {
	// Name is the missing array's name.
	Name string
}

func (e *MissingArrayError) Error() string {
	return fmt.Sprintf("sparse: missing array %q from sparse matrix archive", e.Name)
}

// RankError is returned when a named array has the wrong number of
// dimensions.
type RankError struct {
	// Name is the offending array's name.
	Name string
	// Want is the expected number of dimensions.
	Want int
	// Got is the stored number of dimensions.
	Got int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("sparse: invalid ndim for %q: %d (expected %d)", e.Name, e.Got, e.Want)
}

// DTypeError is returned when an index or offset array is stored with
// an element type other than 4- or 8-byte signed integers.
type DTypeError struct {
	// Name is the offending array's name.
	Name string
	// Descr is the stored dtype descriptor.
	Descr string
}

func (e *DTypeError) Error() string {
	return fmt.Sprintf("sparse: invalid dtype %s for %q in sparse matrix", e.Descr, e.Name)
}

// ShapeError is returned when the stored "shape" array is not a pair.
type ShapeError struct {
	// Name is the offending array's name.
	Name string
	// Got is the stored length.
	Got int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("sparse: invalid length for %q (got %d, expected 2)", e.Name, e.Got)
}

// FormatError is returned when the archive's "format" discriminator
// is not one of the five known tags.
type FormatError struct {
	// Raw holds the stored discriminator bytes verbatim.
	Raw []byte
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("sparse: bad format: %s", showFormat(e.Raw))
}

// FormatMismatchError is returned by a per-variant decoder invoked on
// an archive whose discriminator names a different variant.
type FormatMismatchError struct {
	// Want is the decoder's own tag.
	Want Format
	// Got holds the stored discriminator bytes verbatim.
	Got []byte
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("sparse: wrong format: expected '%s', got %s", e.Want, showFormat(e.Got))
}

// OrderError is returned when multi-dimensional data is stored in
// fortran (column-major) order, which the codec does not support.
type OrderError struct {
	// Name is the offending array's name.
	Name string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("sparse: fortran order is not supported for array %q in sparse NPZ archive", e.Name)
}

// showFormat renders discriminator bytes for diagnostics, escaping
// anything outside printable ASCII.
func showFormat(raw []byte) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, b := range raw {
		if b >= 0x20 && b <= 0x7f {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "\\x%02X", b)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
