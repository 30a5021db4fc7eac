package frame

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/format"
)

func TestNewFlag(t *testing.T) {
	flag := NewFlag()

	assert.True(t, flag.IsValidMagicNumber())
	assert.True(t, flag.IsLittleEndian())
	assert.False(t, flag.HasChecksum())
	assert.Equal(t, format.CodecZstd, flag.Codec())
	assert.Equal(t, uint8(format.DefaultLevel), flag.Level)
	require.NoError(t, flag.Validate())
}

func TestFlag_Checksum(t *testing.T) {
	flag := NewFlag()

	flag.SetChecksum(true)
	assert.True(t, flag.HasChecksum())

	flag.SetChecksum(false)
	assert.False(t, flag.HasChecksum())

	// Toggling the checksum bit must not disturb the magic number.
	flag.SetChecksum(true)
	assert.True(t, flag.IsValidMagicNumber())
}

func TestFlag_Endianness(t *testing.T) {
	flag := NewFlag()

	assert.True(t, flag.IsLittleEndian())
	assert.Equal(t, binary.LittleEndian, flag.GetEndianEngine())

	flag.WithBigEndian()
	assert.True(t, flag.IsBigEndian())
	assert.Equal(t, binary.BigEndian, flag.GetEndianEngine())

	flag.WithLittleEndian()
	assert.True(t, flag.IsLittleEndian())
}

func TestFlag_Codec(t *testing.T) {
	flag := NewFlag()

	for _, codec := range []format.CodecType{
		format.CodecNone, format.CodecZstd, format.CodecS2, format.CodecLZ4,
	} {
		flag.SetCodec(codec)
		assert.Equal(t, codec, flag.Codec())
		assert.True(t, flag.IsValidCodec())
	}

	flag.CodecType = 0xFF
	assert.False(t, flag.IsValidCodec())
}

func TestFlag_Validate(t *testing.T) {
	t.Run("bad magic yields format error", func(t *testing.T) {
		flag := NewFlag()
		flag.Options = 0xBAD0 | (flag.Options &^ MagicNumberMask)

		require.ErrorIs(t, flag.Validate(), errs.ErrFormat)
	})

	t.Run("unknown codec yields corrupt frame", func(t *testing.T) {
		flag := NewFlag()
		flag.CodecType = 0x9

		require.ErrorIs(t, flag.Validate(), errs.ErrCorruptFrame)
	})

	t.Run("out-of-range level yields corrupt frame", func(t *testing.T) {
		flag := NewFlag()
		flag.Level = format.MaxLevel + 1

		require.ErrorIs(t, flag.Validate(), errs.ErrCorruptFrame)
	})
}
