// Package frame defines the low-level binary structures and constants of
// the zxc frame format.
//
// A frame is the complete compressed artifact: a fixed-size header,
// a sequence of block records in original input order, an end-of-blocks
// marker, and an optional checksum trailer. The format is self-describing:
// a reader needs no out-of-band knowledge of the codec, level, block size
// or checksum setting used by the producer.
//
// # Frame Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed)                                │
//	│  - Flag (4 bytes): magic, checksum bit, codec, level    │
//	│  - BlockSize (4 bytes)                                  │
//	│  - OriginalSize (8 bytes, all-ones when unknown)        │
//	├─────────────────────────────────────────────────────────┤
//	│ Block Record 0                                          │
//	│  - Index (4 bytes) = 0                                  │
//	│  - OrigLen (4 bytes)                                    │
//	│  - CompLen (4 bytes)                                    │
//	│  - Payload (CompLen bytes)                              │
//	├─────────────────────────────────────────────────────────┤
//	│ ... Block Record N-1 (indices contiguous)               │
//	├─────────────────────────────────────────────────────────┤
//	│ EOF Marker (12 bytes)                                   │
//	│  - Index = 0xFFFFFFFF, OrigLen = CompLen = 0            │
//	├─────────────────────────────────────────────────────────┤
//	│ Checksum Trailer (8 bytes, iff checksum bit set)        │
//	│  - xxHash64 of the whole original stream                │
//	└─────────────────────────────────────────────────────────┘
//
// # Flag Format
//
// The 4-byte flag prefix packs into:
//
//	Byte 0-1 (Options, 16 bits, always little-endian):
//	  Bit 0: Checksum trailer present
//	  Bit 1: Endianness (0=little-endian, 1=big-endian)
//	  Bits 2-3: Reserved (must be 0)
//	  Bits 4-15: Magic number (0xEC10, frame format v1)
//
//	Byte 2: Codec type (0x1=None, 0x2=Zstd, 0x3=S2, 0x4=LZ4)
//	Byte 3: Compression level (1-5, informational for decoding)
//
// # Streamability
//
// The format is streamable in both directions. Writer emits block records
// as they become ready without knowing the total count in advance (the
// EOF marker closes the sequence); Reader hands each record to the caller
// before the next one is consumed, which is what allows a parallel
// decompressor to decode block N+1 while block N is still in flight
// downstream. Neither side ever reorders records on the wire.
//
// # Validation
//
// Decoding distinguishes three structural failures:
//   - errs.ErrFormat: the magic number is not a known zxc frame version
//   - errs.ErrCorruptFrame: recognized frame with broken structure
//     (non-contiguous indices, lengths exceeding the block size)
//   - errs.ErrTruncatedInput: the stream ends before declared bytes arrive
package frame
