package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/format"
)

type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() *S2Codec {
	return &S2Codec{}
}

// EncodeBlock compresses one block using S2 compression.
//
// Levels 1-2 use the default encoder, 3-4 use EncodeBetter, and 5 uses
// EncodeBest. S2 stores incompressible input as literal runs, so the
// output is always decodable regardless of input entropy.
func (c *S2Codec) EncodeBlock(data []byte, level int) ([]byte, error) {
	if !format.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}

	if len(data) == 0 {
		return nil, nil
	}

	switch {
	case level <= 2:
		return s2.Encode(nil, data), nil
	case level <= 4:
		return s2.EncodeBetter(nil, data), nil
	default:
		return s2.EncodeBest(nil, data), nil
	}
}

// DecodeBlock decompresses one S2 block.
func (c *S2Codec) DecodeBlock(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
