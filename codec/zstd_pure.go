//go:build !cgo

package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/format"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPools holds one encoder pool per effective encoder speed.
// Encoders carry their level as construction-time state, so each speed
// needs its own pool. EncodeAll itself is stateless and pool-safe.
var zstdEncoderPools = map[zstd.EncoderLevel]*sync.Pool{
	zstd.SpeedFastest:           newZstdEncoderPool(zstd.SpeedFastest),
	zstd.SpeedDefault:           newZstdEncoderPool(zstd.SpeedDefault),
	zstd.SpeedBetterCompression: newZstdEncoderPool(zstd.SpeedBetterCompression),
	zstd.SpeedBestCompression:   newZstdEncoderPool(zstd.SpeedBestCompression),
}

func newZstdEncoderPool(level zstd.EncoderLevel) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(level),
				zstd.WithEncoderCRC(false), // Frame-level checksum covers integrity
				zstd.WithEncoderConcurrency(1),
			)
			if err != nil {
				// This should never happen with valid options
				panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
			}
			return encoder
		},
	}
}

// EncodeBlock compresses one block using Zstandard.
// Uses a pooled encoder for better performance (eliminates allocation overhead).
func (c *ZstdCodec) EncodeBlock(data []byte, level int) ([]byte, error) {
	if !format.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}

	pool := zstdEncoderPools[zstd.EncoderLevelFromZstd(zstdNativeLevels[level])]

	// Get encoder from pool (reuses "warmed up" encoder)
	encoder := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	return encoder.EncodeAll(data, nil), nil
}

// DecodeBlock decompresses one Zstandard block.
// Uses a pooled decoder for better performance (eliminates allocation overhead).
//
// This method validates the payload format and returns an error if the
// data is corrupted or was not compressed with Zstandard.
func (c *ZstdCodec) DecodeBlock(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	// Get decoder from pool (reuses "warmed up" decoder)
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder
	// Even if this call fails, the decoder can be reused for next call
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
