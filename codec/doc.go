// Package codec provides the per-block compression algorithms used by zxc
// frames.
//
// Compression in zxc is strictly block-scoped: each block of at most
// BlockSize bytes is compressed independently, with no shared dictionary or
// history between blocks. That independence is what makes parallel
// compression and decompression possible, at a small cost in ratio compared
// to whole-stream compression.
//
// # Architecture
//
// The package defines three interfaces:
//
//	type Encoder interface {
//	    EncodeBlock(data []byte, level int) ([]byte, error)
//	}
//
//	type Decoder interface {
//	    DecodeBlock(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Encoder
//	    Decoder
//	}
//
// The streaming machinery holds a single Codec and calls it from many
// goroutines at once, so all implementations must be safe for concurrent
// use. Get returns the built-in implementation for a format.CodecType:
//
//	c, err := codec.Get(format.CodecZstd)
//
// # Supported Algorithms
//
// **Zstandard** (format.CodecZstd, the default)
//
// Best compression ratio. Built against libzstd via valyala/gozstd when cgo
// is available, and klauspost/compress/zstd otherwise; both builds produce
// interchangeable standard zstd payloads.
//
// **S2** (format.CodecS2)
//
// Snappy-compatible format from klauspost/compress. Much faster than zstd
// at a lower ratio; a good fit for ingestion paths where throughput matters
// more than size.
//
// **LZ4** (format.CodecLZ4)
//
// lz4 block format via pierrec/lz4. Fastest decompression of the set.
// Payloads carry a one-byte stored/compressed token because the lz4 block
// format cannot represent incompressible input; see lz4.go.
//
// **None** (format.CodecNone)
//
// Pass-through. Frames still get block integrity via the optional xxHash64
// trailer.
//
// # Levels
//
// All encoders accept a level between format.MinLevel (1, fastest) and
// format.MaxLevel (5, best ratio). Each codec maps this scale onto its
// native level range; level 3 is the default. Levels outside the range are
// rejected with errs.ErrInvalidLevel. Decoding ignores levels entirely.
//
// # Memory Management
//
// Encoders and stateful compressor contexts are pooled with sync.Pool.
// Returned slices are always freshly allocated and owned by the caller;
// input slices are never retained.
package codec
