package sparse

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/hupe1980/npzgo/npz"
)

func makeCSR(nnz int) *CSR[float64] {
	ncols := uint64(nnz) + 1
	m := &CSR[float64]{
		Shape:   [2]uint64{1, ncols},
		Data:    make([]float64, nnz),
		Indices: make([]uint64, nnz),
		Indptr:  []uint64{0, uint64(nnz)},
	}
	for i := 0; i < nnz; i++ {
		m.Data[i] = float64(i)
		m.Indices[i] = uint64(i)
	}
	return m
}

func BenchmarkEncodeCSR(b *testing.B) {
	for _, nnz := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("nnz=%d", nnz), func(b *testing.B) {
			m := makeCSR(nnz)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w := npz.NewWriter(io.Discard)
				if err := Encode[float64](m, w); err != nil {
					b.Fatal(err)
				}
				if err := w.Close(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecodeCSR(b *testing.B) {
	for _, nnz := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("nnz=%d", nnz), func(b *testing.B) {
			var buf bytes.Buffer
			w := npz.NewWriter(&buf)
			if err := Encode[float64](makeCSR(nnz), w); err != nil {
				b.Fatal(err)
			}
			if err := w.Close(); err != nil {
				b.Fatal(err)
			}
			raw := buf.Bytes()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a, err := npz.NewArchive(bytes.NewReader(raw), int64(len(raw)))
				if err != nil {
					b.Fatal(err)
				}
				if _, err := Decode[float64](a); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
