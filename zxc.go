// Package zxc provides parallel lossless block compression with a
// self-describing frame format.
//
// Input is split into fixed-size blocks that are compressed independently
// and concurrently, then reassembled in order into a single frame. The
// frame header records everything a reader needs (codec, block size,
// endianness, checksum presence), so decompression takes no configuration.
//
// # Core Features
//
//   - Parallel compression and decompression with a configurable worker count
//   - Deterministic output: identical frames regardless of thread count
//   - Multiple codecs (Zstd, S2, LZ4, None) behind one block interface
//   - Optional xxHash64 integrity trailer over the original bytes
//   - Streaming operation with bounded memory, independent of input size
//
// # Basic Usage
//
// One-shot buffer compression:
//
//	import "github.com/zxclab/zxc"
//
//	compressed, _ := zxc.Compress(data, 3)
//	original, _ := zxc.Decompress(compressed)
//
// Streaming with options:
//
//	res, err := zxc.StreamCompress(dst, src,
//	    zxc.WithLevel(5),
//	    zxc.WithThreads(8),
//	    zxc.WithChecksum(true),
//	)
//
//	res, err = zxc.StreamDecompress(dst, src)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stream
// package, simplifying the most common use cases. The frame package
// defines the container format, codec the per-block algorithms, and
// errs the sentinel errors used for classification with errors.Is.
package zxc

import (
	"bytes"
	"io"

	"github.com/zxclab/zxc/format"
	"github.com/zxclab/zxc/frame"
	"github.com/zxclab/zxc/stream"
)

// Option configures compression or decompression. See the With*
// functions for the available knobs.
type Option = stream.Option

// Result reports byte counts, block counts and the frame checksum for
// one compression or decompression run.
type Result = stream.Result

// WithThreads sets the worker count. Zero uses one worker per CPU, one
// disables concurrency entirely.
func WithThreads(threads int) Option { return stream.WithThreads(threads) }

// WithLevel sets the compression level from format.MinLevel (fastest)
// to format.MaxLevel (best ratio).
func WithLevel(level int) Option { return stream.WithLevel(level) }

// WithBlockSize sets the number of original bytes per block.
func WithBlockSize(blockSize uint32) Option { return stream.WithBlockSize(blockSize) }

// WithCodec selects the block compression algorithm.
func WithCodec(codecType format.CodecType) Option { return stream.WithCodec(codecType) }

// WithChecksum enables the xxHash64 trailer when compressing and
// requests trailer verification when decompressing.
func WithChecksum(enabled bool) Option { return stream.WithChecksum(enabled) }

// Compress compresses data in one shot at the given level using the
// default codec and one worker per CPU. The frame header records the
// exact original size.
func Compress(data []byte, level int) ([]byte, error) {
	return CompressWithOptions(data, stream.WithLevel(level))
}

// CompressWithOptions is Compress with full control over the pipeline
// configuration.
func CompressWithOptions(data []byte, opts ...Option) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, frame.HeaderSize+frame.BlockHeaderSize+len(data)/2))

	opts = append(opts, stream.WithOriginalSize(uint64(len(data))))
	if _, err := stream.Compress(buf, bytes.NewReader(data), opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress reconstructs the original bytes from a frame in one shot.
// All frame parameters come from the header. The reconstructed length
// is cross-checked against the header when the producer recorded it.
func Decompress(data []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	// Preallocate from the recorded size, but never trust a header to
	// allocate more than 1GiB up front.
	if header, err := frame.ParseHeader(data); err == nil &&
		header.HasKnownOriginalSize() && header.OriginalSize <= 1<<30 {
		buf.Grow(int(header.OriginalSize))
	}

	if _, err := stream.Decompress(&buf, bytes.NewReader(data), opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// StreamCompress compresses src into a frame on dst without buffering
// either side in memory.
func StreamCompress(dst io.Writer, src io.Reader, opts ...Option) (Result, error) {
	return stream.Compress(dst, src, opts...)
}

// StreamDecompress reconstructs the original bytes of the frame on src
// onto dst.
func StreamDecompress(dst io.Writer, src io.Reader, opts ...Option) (Result, error) {
	return stream.Decompress(dst, src, opts...)
}
