package codec

import (
	"fmt"
	"testing"

	"github.com/zxclab/zxc/format"
)

func BenchmarkEncodeBlock(b *testing.B) {
	data := generateTestData(256*1024, "text")

	for name, c := range getAllCodecs() {
		for level := format.MinLevel; level <= format.MaxLevel; level++ {
			b.Run(fmt.Sprintf("%s/level%d", name, level), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, err := c.EncodeBlock(data, level)
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDecodeBlock(b *testing.B) {
	data := generateTestData(256*1024, "text")

	for name, c := range getAllCodecs() {
		compressed, err := c.EncodeBlock(data, format.DefaultLevel)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := c.DecodeBlock(compressed)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
