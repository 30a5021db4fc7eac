package frame

import (
	"github.com/zxclab/zxc/endian"
	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/format"
)

// Flag represents the packed Options field plus the codec and level bytes
// at the start of the frame header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum-present flag, 1 means a trailer follows the EOF marker.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number identifying the frame format:
	//   - 0xEC10 (0b1110_1100_0001_0000): frame format v1
	Options uint16

	// CodecType is an enum indicating the block codec used for this frame.
	CodecType uint8

	// Level records the compression level blocks were produced at.
	// Informational only: decoding never consults it.
	Level uint8
}

var validCodecTypes = map[uint8]struct{}{
	uint8(format.CodecNone): {},
	uint8(format.CodecZstd): {},
	uint8(format.CodecS2):   {},
	uint8(format.CodecLZ4):  {},
}

// NewFlag creates a new Flag with default settings: little-endian, no
// checksum, Zstd codec at the default level.
func NewFlag() Flag {
	flag := Flag{
		Options:   MagicFrameV1Opt,
		CodecType: uint8(format.CodecZstd),
		Level:     format.DefaultLevel,
	}
	flag.WithLittleEndian()

	return flag
}

// HasChecksum returns whether the frame carries a checksum trailer.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the checksum trailer.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether frame fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether frame fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Codec returns the codec type byte as a format.CodecType.
func (f Flag) Codec() format.CodecType {
	return format.CodecType(f.CodecType)
}

// SetCodec sets the codec type byte.
func (f *Flag) SetCodec(codec format.CodecType) {
	f.CodecType = uint8(codec)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFrameV1Opt
}

// IsValidCodec checks if the codec type byte is a known codec.
func (f Flag) IsValidCodec() bool {
	_, ok := validCodecTypes[f.CodecType]
	return ok
}

// Validate checks if the flag fields contain valid values.
//
// A bad magic number means the input is not a zxc frame at all and yields
// ErrFormat; a recognized frame with an unknown codec or level is
// structurally broken and yields ErrCorruptFrame.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrFormat
	}

	if !f.IsValidCodec() {
		return errs.ErrCorruptFrame
	}

	if !format.ValidLevel(int(f.Level)) {
		return errs.ErrCorruptFrame
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
