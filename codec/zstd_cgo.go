//go:build cgo

package codec

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/format"
)

// EncodeBlock compresses one block using the libzstd bindings.
// gozstd maintains its own internal context pools, so no explicit
// pooling is needed here.
func (c *ZstdCodec) EncodeBlock(data []byte, level int) ([]byte, error) {
	if !format.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}

	return gozstd.CompressLevel(nil, data, zstdNativeLevels[level]), nil
}

// DecodeBlock decompresses one Zstandard block via libzstd.
func (c *ZstdCodec) DecodeBlock(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
