package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxclab/zxc/endian"
	"github.com/zxclab/zxc/errs"
)

func TestBlockHeader_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	bh := BlockHeader{Index: 7, OrigLen: 4096, CompLen: 812}
	data := bh.Bytes(engine)
	require.Len(t, data, BlockHeaderSize)

	var parsed BlockHeader
	require.NoError(t, parsed.Parse(data, engine))
	assert.Equal(t, bh, parsed)
}

func TestBlockHeader_ParseShort(t *testing.T) {
	var bh BlockHeader
	err := bh.Parse(make([]byte, BlockHeaderSize-1), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestNewEOFMarker(t *testing.T) {
	eof := NewEOFMarker()

	assert.True(t, eof.IsEOF())
	assert.Equal(t, uint32(EOFIndex), eof.Index)
	require.NoError(t, eof.Validate(0, DefaultBlockSize))
}

func TestBlockHeader_Validate(t *testing.T) {
	const blockSize = 1024

	t.Run("valid record", func(t *testing.T) {
		bh := BlockHeader{Index: 3, OrigLen: 1024, CompLen: 500}
		require.NoError(t, bh.Validate(3, blockSize))
	})

	t.Run("out-of-sequence index", func(t *testing.T) {
		bh := BlockHeader{Index: 4, OrigLen: 100, CompLen: 50}
		require.ErrorIs(t, bh.Validate(3, blockSize), errs.ErrCorruptFrame)
	})

	t.Run("original length exceeds block size", func(t *testing.T) {
		bh := BlockHeader{Index: 0, OrigLen: blockSize + 1, CompLen: 50}
		require.ErrorIs(t, bh.Validate(0, blockSize), errs.ErrCorruptFrame)
	})

	t.Run("zero original length", func(t *testing.T) {
		bh := BlockHeader{Index: 0, OrigLen: 0, CompLen: 50}
		require.ErrorIs(t, bh.Validate(0, blockSize), errs.ErrCorruptFrame)
	})

	t.Run("zero payload length", func(t *testing.T) {
		bh := BlockHeader{Index: 0, OrigLen: 100, CompLen: 0}
		require.ErrorIs(t, bh.Validate(0, blockSize), errs.ErrCorruptFrame)
	})

	t.Run("payload length above compressed bound", func(t *testing.T) {
		bh := BlockHeader{Index: 0, OrigLen: 100, CompLen: CompressedBound(blockSize) + 1}
		require.ErrorIs(t, bh.Validate(0, blockSize), errs.ErrCorruptFrame)
	})

	t.Run("payload length at compressed bound", func(t *testing.T) {
		bh := BlockHeader{Index: 0, OrigLen: 100, CompLen: CompressedBound(blockSize)}
		require.NoError(t, bh.Validate(0, blockSize))
	})

	t.Run("EOF marker with payload is corrupt", func(t *testing.T) {
		bh := BlockHeader{Index: EOFIndex, OrigLen: 0, CompLen: 12}
		require.ErrorIs(t, bh.Validate(9, blockSize), errs.ErrCorruptFrame)
	})
}
