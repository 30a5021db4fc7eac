package codec

import (
	"fmt"

	"github.com/zxclab/zxc/format"
)

// Encoder turns one block of raw bytes into one block of compressed
// bytes at the given level.
//
// Implementations must be deterministic and independent per block: the
// output is a pure function of the input bytes and the level, with no
// state carried between calls. That property is what permits encoding
// blocks in parallel and still producing a deterministic frame.
type Encoder interface {
	// EncodeBlock compresses one block.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	EncodeBlock(data []byte, level int) ([]byte, error)
}

// Decoder is the inverse capability: it reconstructs one block of raw
// bytes from one compressed block.
//
// Decoding never needs the level the block was produced at; the payload
// is self-contained. Implementations must be safe for concurrent use.
type Decoder interface {
	// DecodeBlock decompresses one block.
	//
	// Error conditions:
	//   - Returns an error if the payload is corrupted or was produced by
	//     an incompatible algorithm
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	DecodeBlock(data []byte) ([]byte, error)
}

// Codec combines both directions of the block capability.
//
// The streaming machinery depends only on this interface, which keeps the
// scheduling code independent of any particular compression algorithm.
type Codec interface {
	Encoder
	Decoder
}

var builtinCodecs = map[format.CodecType]Codec{
	format.CodecNone: NewNoOpCodec(),
	format.CodecZstd: NewZstdCodec(),
	format.CodecS2:   NewS2Codec(),
	format.CodecLZ4:  NewLZ4Codec(),
}

// Get retrieves the built-in Codec for the specified codec type.
func Get(codecType format.CodecType) (Codec, error) {
	if c, ok := builtinCodecs[codecType]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unsupported codec type: %s", codecType)
}
