package sparse

import "math"

// Index arrays may be stored as either i32 or i64. These helpers are
// the single place where the two widths meet: widening on read,
// narrowing (when lossless) on write.

// fitsInt32 reports whether every value lies in the signed 32-bit
// range, making the array eligible for the narrow encoding. The
// decision is all-or-nothing per array.
func fitsInt32(vals []int64) bool {
	for _, v := range vals {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return false
		}
	}
	return true
}

// widenToUint64 widens i32 indices to the canonical unsigned width.
// Indices are assumed nonnegative, matching scipy's own use.
func widenToUint64(xs []int32) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = uint64(x)
	}
	return out
}

// reinterpretUint64 converts i64 indices to the canonical unsigned
// width, preserving the bit pattern.
func reinterpretUint64(xs []int64) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = uint64(x)
	}
	return out
}

// widenToInt64 widens i32 offsets to the canonical signed width.
func widenToInt64(xs []int32) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = int64(x)
	}
	return out
}

// narrowToInt32 narrows values the caller has already checked with
// fitsInt32.
func narrowToInt32(xs []int64) []int32 {
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = int32(x)
	}
	return out
}

// signedView reinterprets unsigned indices as signed for encoding,
// mirroring scipy's storage of indices in signed dtypes.
func signedView(xs []uint64) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = int64(x)
	}
	return out
}
