package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	data := bb.Bytes()

	assert.Equal(t, []byte("hello"), data)
	// Should return the same underlying slice
	assert.True(t, &bb.B[0] == &data[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.B)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.B)
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.SetLength(10)
	assert.Equal(t, 10, bb.Len())

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(cap(bb.B) + 1) })
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("0123456789abcdef"))

	bb.Grow(1024)

	assert.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 1024, "Grow should make room for requested bytes")
	assert.Equal(t, []byte("0123456789abcdef"), bb.B, "Grow should preserve contents")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	bb.MustWrite([]byte("frame bytes"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	assert.Equal(t, "frame bytes", out.String())
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))
	p.Put(bb)

	reused := p.Get()
	require.NotNil(t, reused)
	assert.Equal(t, 0, reused.Len(), "pooled buffer should come back reset")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	bb.Grow(4096)
	p.Put(bb) // exceeds threshold, dropped

	fresh := p.Get()
	assert.LessOrEqual(t, fresh.Cap(), 4096)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(64, 128)
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestGetFrameBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := GetFrameBuffer()
				bb.MustWrite([]byte("block"))
				PutFrameBuffer(bb)
			}
		}()
	}
	wg.Wait()
}

// =============================================================================
// Chunk pool Tests
// =============================================================================

func TestGetChunk(t *testing.T) {
	buf, release := GetChunk(256)
	require.Len(t, buf, 256)
	release()

	buf2, release2 := GetChunk(128)
	require.Len(t, buf2, 128)
	release2()
}

func TestGetChunk_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				buf, release := GetChunk(1024)
				buf[0] = byte(j)
				release()
			}
		}()
	}
	wg.Wait()
}
