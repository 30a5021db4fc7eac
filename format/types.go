package format

// CodecType identifies the block codec used to produce a frame's block
// payloads. The value is stored in the frame header so a decompressor
// never needs to know it ahead of time.
type CodecType uint8

const (
	CodecNone CodecType = 0x1 // CodecNone represents passthrough blocks with no compression.
	CodecZstd CodecType = 0x2 // CodecZstd represents Zstandard block compression.
	CodecS2   CodecType = 0x3 // CodecS2 represents S2 block compression.
	CodecLZ4  CodecType = 0x4 // CodecLZ4 represents LZ4 block compression.
)

const (
	// MinLevel and MaxLevel bound the supported compression levels.
	// Level only affects how a block is produced, never how it is decoded.
	MinLevel = 1
	MaxLevel = 5

	// DefaultLevel is the level used when the caller does not specify one.
	DefaultLevel = 3
)

func (c CodecType) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecZstd:
		return "Zstd"
	case CodecS2:
		return "S2"
	case CodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known codec type.
func (c CodecType) IsValid() bool {
	switch c {
	case CodecNone, CodecZstd, CodecS2, CodecLZ4:
		return true
	default:
		return false
	}
}

// ValidLevel reports whether level is within the supported range.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}
