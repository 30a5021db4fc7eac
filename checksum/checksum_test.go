package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccumulator_MatchesOneShot(t *testing.T) {
	data := []byte("hello, block compression world")

	acc := NewAccumulator()
	acc.Update(data)

	require.Equal(t, Sum64(data), acc.Sum64())
}

func TestAccumulator_SplitIndependence(t *testing.T) {
	// The digest depends only on the byte stream, not on how the
	// stream was chunked into updates.
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i * 7)
	}

	whole := NewAccumulator()
	whole.Update(data)

	chunked := NewAccumulator()
	for i := 0; i < len(data); i += 100 {
		end := min(i+100, len(data))
		chunked.Update(data[i:end])
	}

	require.Equal(t, whole.Sum64(), chunked.Sum64())
}

func TestAccumulator_SingleByteSensitivity(t *testing.T) {
	data := make([]byte, 1024)
	base := Sum64(data)

	data[512] ^= 0x01
	require.NotEqual(t, base, Sum64(data))
}

func TestAccumulator_Reset(t *testing.T) {
	acc := NewAccumulator()
	acc.Update([]byte("first stream"))
	first := acc.Sum64()

	acc.Reset()
	acc.Update([]byte("first stream"))
	require.Equal(t, first, acc.Sum64())

	acc.Reset()
	require.Equal(t, Sum64(nil), acc.Sum64())
}

func TestAccumulator_EmptyInput(t *testing.T) {
	acc := NewAccumulator()
	require.Equal(t, Sum64(nil), acc.Sum64())

	acc.Update(nil)
	acc.Update([]byte{})
	require.Equal(t, Sum64(nil), acc.Sum64())
}
