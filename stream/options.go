package stream

import (
	"fmt"

	"github.com/zxclab/zxc/codec"
	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/format"
	"github.com/zxclab/zxc/frame"
	"github.com/zxclab/zxc/internal/options"
)

// Option configures a compression or decompression pipeline.
type Option = options.Option[*config]

type config struct {
	threads      int
	level        int
	blockSize    uint32
	codecType    format.CodecType
	checksum     bool
	originalSize uint64

	// codecImpl overrides the codecType lookup with a concrete Codec.
	// Used to exercise the pipeline with instrumented codecs.
	codecImpl codec.Codec
}

func newConfig() *config {
	return &config{
		threads:      0,
		level:        format.DefaultLevel,
		blockSize:    frame.DefaultBlockSize,
		codecType:    format.CodecZstd,
		checksum:     false,
		originalSize: frame.OriginalSizeUnknown,
	}
}

// resolve validates the configuration and materializes derived state.
// Validation happens before any input is consumed or output produced.
func (c *config) resolve() (workers int, cdc codec.Codec, err error) {
	if c.threads < 0 {
		return 0, nil, fmt.Errorf("%w: %d", errs.ErrInvalidThreadCount, c.threads)
	}
	if !format.ValidLevel(c.level) {
		return 0, nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, c.level)
	}
	if c.blockSize == 0 || c.blockSize > frame.MaxBlockSize {
		return 0, nil, fmt.Errorf("%w: %d", errs.ErrInvalidBlockSize, c.blockSize)
	}

	cdc = c.codecImpl
	if cdc == nil {
		cdc, err = codec.Get(c.codecType)
		if err != nil {
			return 0, nil, err
		}
	}

	return resolveThreads(c.threads), cdc, nil
}

// WithThreads sets the number of worker goroutines. Zero (the default)
// uses one worker per CPU; one runs the pipeline sequentially without
// goroutines; negative values are rejected.
func WithThreads(threads int) Option {
	return options.NoError(func(c *config) {
		c.threads = threads
	})
}

// WithLevel sets the compression level, from format.MinLevel (fastest)
// to format.MaxLevel (best ratio). Ignored when decompressing.
func WithLevel(level int) Option {
	return options.NoError(func(c *config) {
		c.level = level
	})
}

// WithBlockSize sets how many original bytes each block holds. Larger
// blocks improve ratio, smaller blocks improve parallelism on short
// inputs. Ignored when decompressing; the frame header governs.
func WithBlockSize(blockSize uint32) Option {
	return options.NoError(func(c *config) {
		c.blockSize = blockSize
	})
}

// WithCodec selects the block compression algorithm. Ignored when
// decompressing; the frame header governs.
func WithCodec(codecType format.CodecType) Option {
	return options.NoError(func(c *config) {
		c.codecType = codecType
	})
}

// WithOriginalSize records the total uncompressed length in the frame
// header. Producers that know the input size up front (one-shot buffer
// compression) use this so readers can preallocate and cross-check the
// reconstructed length. Streaming producers normally leave it unset.
func WithOriginalSize(size uint64) Option {
	return options.NoError(func(c *config) {
		c.originalSize = size
	})
}

// WithChecksum controls integrity checking. When compressing it makes
// the frame carry an xxHash64 trailer over the original bytes. When
// decompressing it requests verification of that trailer; without it
// the trailer is read but not checked, trading integrity for speed.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.checksum = enabled
	})
}
