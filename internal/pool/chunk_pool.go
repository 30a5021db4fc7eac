package pool

import "sync"

// Chunk buffer pool for the streaming pipelines.
// Pipelines read bounded chunks, hand them to workers, and recycle the
// buffers once the compressed record has been flushed.
var chunkSlicePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetChunk retrieves and resizes a byte slice from the pool.
//
// The returned slice has length equal to size. If the pooled slice has
// insufficient capacity, a new slice is allocated. The caller must call
// the returned cleanup function (typically with defer, or once the chunk
// has been consumed) to return the slice to the pool.
//
// Example:
//
//	buf, release := pool.GetChunk(blockSize)
//	n, err := io.ReadFull(src, buf)
//	// ... hand buf[:n] to a worker, worker calls release() when done
func GetChunk(size int) ([]byte, func()) {
	ptr, _ := chunkSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { chunkSlicePool.Put(ptr) }
}
