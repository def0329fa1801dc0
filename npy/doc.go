// Package npy reads and writes single arrays in the NPY binary format.
//
// NPY is the serialization format used by numpy for a single typed,
// shaped array: a magic header, a small Python-dict metadata record
// (dtype descriptor, memory order, shape) and the raw element stream.
//
// The package is deliberately strict on the read side: Data[T] only
// materializes elements whose stored dtype matches T's kind and width
// exactly (both byte orders are accepted and converted). Callers that
// want to accept multiple widths, such as the sparse codec, inspect
// DType() first and pick the matching element type themselves.
package npy
