package npz

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// WriterOptions configures an archive writer.
type WriterOptions struct {
	// Compress enables deflate compression for member arrays. Off by
	// default, matching scipy.sparse.save_npz(compressed=False).
	Compress bool
	// Level is the deflate level when Compress is set.
	Level int
}

// DefaultWriterOptions are the options used when none are given.
var DefaultWriterOptions = WriterOptions{
	Compress: false,
	Level:    flate.DefaultCompression,
}

// WithCompression enables deflate compression at the given level.
func WithCompression(level int) func(o *WriterOptions) {
	return func(o *WriterOptions) {
		o.Compress = true
		o.Level = level
	}
}

// Writer builds an NPZ archive member by member. Members appear in
// the archive in creation order; Create finishes the previous member,
// so at most one is open at a time.
type Writer struct {
	zw     *zip.Writer
	method uint16
}

// NewWriter creates an archive writer on top of w.
func NewWriter(w io.Writer, optFns ...func(o *WriterOptions)) *Writer {
	opts := DefaultWriterOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	zw := zip.NewWriter(w)
	method := uint16(zip.Store)
	if opts.Compress {
		method = zip.Deflate
		level := opts.Level
		zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(out, level)
		})
	}
	return &Writer{zw: zw, method: method}
}

// Create begins a new member array with the given bare name. The
// ".npy" suffix is appended, following the savez convention.
func (w *Writer) Create(name string) (io.Writer, error) {
	cw, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name + ".npy",
		Method: w.method,
	})
	if err != nil {
		return nil, fmt.Errorf("npz: creating member %q: %w", name, err)
	}
	return cw, nil
}

// Close finishes the archive's central directory. It does not close
// the underlying writer.
func (w *Writer) Close() error {
	return w.zw.Close()
}
