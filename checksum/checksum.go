// Package checksum computes the xxHash64 integrity digest carried in the
// optional frame trailer.
//
// The digest covers the original uncompressed bytes in stream order. Both
// the compression and decompression paths feed blocks to an Accumulator
// strictly in block-index order, so the resulting value is independent of
// thread count and of the order in which workers finished.
package checksum

import (
	"github.com/cespare/xxhash/v2"
)

// Accumulator incrementally hashes uncompressed data in stream order.
// It is not safe for concurrent use; callers serialize updates through
// the in-order flush path.
type Accumulator struct {
	digest *xxhash.Digest
}

// NewAccumulator creates an accumulator with a zero seed.
func NewAccumulator() *Accumulator {
	return &Accumulator{digest: xxhash.New()}
}

// Update absorbs the next run of original bytes.
func (a *Accumulator) Update(data []byte) {
	// Digest.Write never fails.
	_, _ = a.digest.Write(data)
}

// Sum64 returns the digest of everything absorbed so far. It does not
// reset state, so it can be called mid-stream for diagnostics.
func (a *Accumulator) Sum64() uint64 {
	return a.digest.Sum64()
}

// Reset restores the accumulator to its initial state for reuse.
func (a *Accumulator) Reset() {
	a.digest.Reset()
}

// Sum64 computes the digest of data in one shot.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
