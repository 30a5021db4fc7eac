package frame

import (
	"github.com/zxclab/zxc/endian"
	"github.com/zxclab/zxc/errs"
)

// BlockHeader represents the fixed-size header preceding one block
// record's payload.
//
// Sequence indices are zero-based, contiguous, and assigned at chunking
// time; they are never reassigned. The record with Index == EOFIndex and
// zero lengths closes the sequence.
type BlockHeader struct {
	// Index is the block's position in the original input.
	Index uint32 // byte offset 0-3
	// OrigLen is the number of uncompressed bytes the block reconstructs to.
	OrigLen uint32 // byte offset 4-7
	// CompLen is the number of compressed payload bytes following the header.
	CompLen uint32 // byte offset 8-11
}

// NewEOFMarker returns the block header that terminates the record
// sequence.
func NewEOFMarker() BlockHeader {
	return BlockHeader{Index: EOFIndex}
}

// IsEOF reports whether this record is the end-of-blocks marker.
func (bh BlockHeader) IsEOF() bool {
	return bh.Index == EOFIndex
}

// Parse parses a block header from a byte slice using the given engine.
//
// Parameters:
//   - data: Byte slice containing the block header (must be at least 12 bytes)
//   - engine: Endian engine selected by the frame header flag
//
// Returns:
//   - error: ErrTruncatedInput if fewer than 12 bytes are present
func (bh *BlockHeader) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < BlockHeaderSize {
		return errs.ErrTruncatedInput
	}

	bh.Index = engine.Uint32(data[0:4])
	bh.OrigLen = engine.Uint32(data[4:8])
	bh.CompLen = engine.Uint32(data[8:12])

	return nil
}

// AppendBytes appends the serialized block header to buf and returns the
// extended slice.
func (bh BlockHeader) AppendBytes(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint32(buf, bh.Index)
	buf = engine.AppendUint32(buf, bh.OrigLen)
	buf = engine.AppendUint32(buf, bh.CompLen)

	return buf
}

// Bytes serializes the block header into a new byte slice.
func (bh BlockHeader) Bytes(engine endian.EndianEngine) []byte {
	return bh.AppendBytes(make([]byte, 0, BlockHeaderSize), engine)
}

// Validate checks the block header against the frame's block size
// parameter and the expected next sequence index.
//
// The EOF marker must carry zero lengths. Regular records must arrive in
// exact sequence order (reordering or tampering shows up here), must not
// reconstruct to more than the declared block size, and must carry a
// payload for any non-empty block.
func (bh BlockHeader) Validate(expectedIndex uint32, blockSize uint32) error {
	if bh.IsEOF() {
		if bh.OrigLen != 0 || bh.CompLen != 0 {
			return errs.ErrCorruptFrame
		}

		return nil
	}

	if bh.Index != expectedIndex {
		return errs.ErrCorruptFrame
	}

	if bh.OrigLen == 0 || bh.OrigLen > blockSize {
		return errs.ErrCorruptFrame
	}

	if bh.CompLen == 0 || bh.CompLen > CompressedBound(blockSize) {
		return errs.ErrCorruptFrame
	}

	return nil
}
