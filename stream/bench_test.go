package stream

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

func BenchmarkCompress(b *testing.B) {
	data := makeTestData(8 << 20)

	for _, threads := range []int{1, 4, 0} {
		b.Run(fmt.Sprintf("threads=%d", threads), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := Compress(io.Discard, bytes.NewReader(data), WithThreads(threads))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := makeTestData(8 << 20)

	var compressed bytes.Buffer
	if _, err := Compress(&compressed, bytes.NewReader(data), WithChecksum(true)); err != nil {
		b.Fatal(err)
	}

	for _, threads := range []int{1, 4, 0} {
		b.Run(fmt.Sprintf("threads=%d", threads), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := Decompress(io.Discard, bytes.NewReader(compressed.Bytes()), WithThreads(threads))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
