package frame

const (
	// Bit masks for the header Options field
	ChecksumMask     = 0x0001 // Mask for checksum-present bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic number (bits 4-15)
	MagicFrameV1Opt = 0xEC10 // MagicFrameV1Opt is the version 1 magic number for the frame format.
)

// offsets and section sizes in the frame
const (
	HeaderSize      = 16 // fixed header size in bytes
	BlockHeaderSize = 12 // fixed block record header size in bytes
	TrailerSize     = 8  // checksum trailer size in bytes

	// EOFIndex is the reserved sequence index that closes the block
	// sequence. A record with this index carries no lengths and no payload.
	EOFIndex = 0xFFFFFFFF

	// MaxBlockSize caps the block size parameter so a hostile header cannot
	// drive allocations past 1GiB per block.
	MaxBlockSize = 1 << 30

	// DefaultBlockSize is the chunking granularity used when the caller does
	// not specify one. Small enough to keep many blocks in flight on common
	// inputs, large enough that per-record overhead stays negligible.
	DefaultBlockSize = 256 * 1024

	// OriginalSizeUnknown marks a frame produced from an unbounded stream
	// where the total uncompressed length was not known up front.
	OriginalSizeUnknown = ^uint64(0)
)

// CompressedBound returns the largest payload length a conforming codec
// can declare for one block of the given block size. Incompressible
// input expands by at most a small per-block overhead, so any CompLen
// above this bound is corruption. Readers reject such records before
// allocating the payload buffer.
func CompressedBound(blockSize uint32) uint32 {
	return blockSize + blockSize/8 + 1024
}
