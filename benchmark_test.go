package yaz0

import (
	"bytes"
	"testing"
)

func benchmarkInputSet() map[string][]byte {
	return map[string][]byte{
		"repeated-pattern-32k": bytes.Repeat([]byte("abc123"), 5500),
		"long-run-64k":         bytes.Repeat([]byte{0xFF}, 65536),
		"byte-cycle-32k":       bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 3300),
		"random-32k":           pseudoRandomBytes(32768, 123),
	}
}

func BenchmarkEncodeYaz0(b *testing.B) {
	for name, data := range benchmarkInputSet() {
		b.Run(name, func(b *testing.B) {
			opts := DefaultEncodeOptions(0x1000)
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := EncodeYaz0(data, opts); err != nil {
					b.Fatalf("EncodeYaz0 failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecodeYaz0(b *testing.B) {
	for name, data := range benchmarkInputSet() {
		compressed, err := EncodeYaz0(data, DefaultEncodeOptions(0x1000))
		if err != nil {
			b.Fatalf("EncodeYaz0 failed: %v", err)
		}

		b.Run(name, func(b *testing.B) {
			opts := DefaultDecodeOptions()
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := DecodeYaz0(compressed, opts); err != nil {
					b.Fatalf("DecodeYaz0 failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkEncodeYay0(b *testing.B) {
	for name, data := range benchmarkInputSet() {
		b.Run(name, func(b *testing.B) {
			opts := DefaultEncodeOptions(0x1000)
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := EncodeYay0(data, opts); err != nil {
					b.Fatalf("EncodeYay0 failed: %v", err)
				}
			}
		})
	}
}
