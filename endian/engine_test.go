package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.NotNil(t, engine)
	assert.Equal(t, binary.LittleEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.NotNil(t, engine)
	assert.Equal(t, binary.BigEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
}

func TestCheckEndianness(t *testing.T) {
	native := CheckEndianness()
	require.NotNil(t, native)

	if IsNativeLittleEndian() {
		assert.Equal(t, binary.LittleEndian, native)
		assert.False(t, IsNativeBigEndian())
	} else {
		assert.Equal(t, binary.BigEndian, native)
		assert.True(t, IsNativeBigEndian())
	}
}

func TestCompareNativeEndian(t *testing.T) {
	native := CheckEndianness()
	if native == binary.LittleEndian {
		assert.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		assert.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		assert.True(t, CompareNativeEndian(GetBigEndianEngine()))
		assert.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}

func TestEngine_AppendRoundTrip(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint32(nil, 42)
	buf = engine.AppendUint64(buf, 0xDEADBEEF)

	require.Len(t, buf, 12)
	assert.Equal(t, uint32(42), engine.Uint32(buf[0:4]))
	assert.Equal(t, uint64(0xDEADBEEF), engine.Uint64(buf[4:12]))
}
