package codec

import (
	"fmt"

	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/format"
)

// NoOpCodec passes block data through without compression.
//
// This codec is useful for:
//   - Incompressible data (already compressed, encrypted, random)
//   - Benchmarking the framing and scheduling overhead in isolation
//   - Archival frames where integrity checking matters but size does not
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() *NoOpCodec {
	return &NoOpCodec{}
}

// EncodeBlock returns a copy of the input block.
//
// The copy is required: callers recycle input buffers once a block has
// been encoded, so the returned slice must not alias the input.
func (c *NoOpCodec) EncodeBlock(data []byte, level int) ([]byte, error) {
	if !format.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}

	if len(data) == 0 {
		return nil, nil
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// DecodeBlock returns a copy of the input block.
func (c *NoOpCodec) DecodeBlock(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}
