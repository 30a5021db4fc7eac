package frame

import (
	"github.com/zxclab/zxc/errs"
)

// Header represents the fixed-size header section at the start of a frame.
type Header struct {
	// BlockSize is the chunking parameter the frame was produced with.
	BlockSize uint32 // byte offset 4-7
	// OriginalSize is the total uncompressed length of the stream, or
	// OriginalSizeUnknown when the producer did not know it up front.
	OriginalSize uint64 // byte offset 8-15

	// Flag is a packed field for the checksum/endianness options, magic
	// number, codec type and level.
	Flag Flag // byte offset 0-3
}

// NewHeader creates a new Header with the given block size.
// The original size defaults to unknown; stream producers that cannot
// seek leave it that way, the one-shot engine fills it in.
func NewHeader(blockSize uint32) *Header {
	return &Header{
		Flag:         NewFlag(),
		BlockSize:    blockSize,
		OriginalSize: OriginalSizeUnknown,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 16 bytes)
//
// Returns:
//   - error: ErrTruncatedInput if data is not 16 bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrTruncatedInput
	}

	// Parse options first to determine endianness (always little-endian for
	// the Options field itself).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CodecType = data[2]
	h.Flag.Level = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.BlockSize = engine.Uint32(data[4:8])
	h.OriginalSize = engine.Uint64(data[8:16])

	if h.BlockSize == 0 || h.BlockSize > MaxBlockSize {
		return errs.ErrCorruptFrame
	}

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CodecType
	b[3] = h.Flag.Level
	engine.PutUint32(b[4:8], h.BlockSize)
	engine.PutUint64(b[8:16], h.OriginalSize)

	return b
}

// HasKnownOriginalSize reports whether the producer recorded the total
// uncompressed length.
func (h *Header) HasKnownOriginalSize() bool {
	return h.OriginalSize != OriginalSizeUnknown
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 16 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrTruncatedInput, ErrFormat or ErrCorruptFrame
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrTruncatedInput
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
