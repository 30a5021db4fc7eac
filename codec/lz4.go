package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/format"
)

// LZ4 block payloads carry a one-byte token before the data. The lz4
// block format has no literal-run fallback, and CompressBlock reports
// incompressible input by writing zero bytes. The token makes every
// block self-contained:
//   - lz4TokenRaw: the remaining bytes are the original block, stored
//   - lz4TokenCompressed: the remaining bytes are an lz4 block
const (
	lz4TokenRaw        = 0x00
	lz4TokenCompressed = 0x01
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4HCPool pools lz4.CompressorHC instances. The Level field is set
// per call before use.
var lz4HCPool = sync.Pool{
	New: func() any {
		return &lz4.CompressorHC{}
	},
}

// lz4HCLevels maps levels 2..5 to lz4 high-compression levels.
// Level 1 uses the fast compressor instead. Index 0 and 1 are unused.
var lz4HCLevels = [...]lz4.CompressionLevel{0, 0, lz4.Level2, lz4.Level4, lz4.Level6, lz4.Level9}

type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() *LZ4Codec {
	return &LZ4Codec{}
}

// EncodeBlock compresses one block using LZ4 block compression.
//
// Level 1 uses the fast compressor; levels 2-5 use the high-compression
// variant at increasing effort. Incompressible blocks are stored raw
// behind the token byte rather than expanded.
func (c *LZ4Codec) EncodeBlock(data []byte, level int) ([]byte, error) {
	if !format.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}

	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))
	dst[0] = lz4TokenCompressed

	var (
		n   int
		err error
	)
	if level == 1 {
		lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
		n, err = lc.CompressBlock(data, dst[1:])
		lz4CompressorPool.Put(lc)
	} else {
		hc, _ := lz4HCPool.Get().(*lz4.CompressorHC)
		hc.Level = lz4HCLevels[level]
		n, err = hc.CompressBlock(data, dst[1:])
		lz4HCPool.Put(hc)
	}
	if err != nil {
		return nil, err
	}

	// n == 0 means the block did not compress, store it raw.
	if n == 0 || n >= len(data) {
		dst = dst[:1+len(data)]
		dst[0] = lz4TokenRaw
		copy(dst[1:], data)

		return dst, nil
	}

	return dst[:1+n], nil
}

// DecodeBlock decompresses one LZ4 block.
//
// The destination buffer starts at 4x the payload size and doubles on
// lz4.ErrInvalidSourceShortBuffer, capped at 1GB to bound memory on
// corrupted input.
func (c *LZ4Codec) DecodeBlock(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	token, payload := data[0], data[1:]
	switch token {
	case lz4TokenRaw:
		out := make([]byte, len(payload))
		copy(out, payload)

		return out, nil
	case lz4TokenCompressed:
		// Handled below.
	default:
		return nil, fmt.Errorf("lz4: invalid block token 0x%02x", token)
	}

	bufSize := len(payload) * 4
	const maxSize = 1 << 30

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(payload, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
