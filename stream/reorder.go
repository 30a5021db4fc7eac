package stream

import (
	"fmt"
	"sync"
)

// blockResult is the outcome of processing one block, produced by a
// worker and consumed in index order by the reorder queue.
type blockResult struct {
	index    uint32
	payload  []byte // bytes destined for the sink
	original []byte // uncompressed bytes for the checksum accumulator
	err      error
	release  func() // returns pooled buffers, may be nil
}

// reorderQueue restores stream order over results that complete in
// arbitrary order. Workers push results as they finish; the queue holds
// them until every lower-indexed block has been emitted, then flushes
// the contiguous prefix through the emit callback.
//
// Error handling follows the same ordering rule: a failed block only
// takes effect when the cursor reaches its index, so the error reported
// to the caller is always the one with the lowest block index, and all
// blocks before it are still emitted. Once a failure is recorded the
// queue emits nothing further and only releases buffers.
type reorderQueue struct {
	mu      sync.Mutex
	pending map[uint32]blockResult
	cursor  uint32
	emit    func(blockResult) error
	err     error
}

func newReorderQueue(emit func(blockResult) error) *reorderQueue {
	return &reorderQueue{
		pending: make(map[uint32]blockResult),
		emit:    emit,
	}
}

// push hands a finished block to the queue and flushes whatever prefix
// became contiguous. Safe for concurrent use.
func (q *reorderQueue) push(res blockResult) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending[res.index] = res
	q.flushLocked()
}

func (q *reorderQueue) flushLocked() {
	for {
		res, ok := q.pending[q.cursor]
		if !ok {
			return
		}
		delete(q.pending, q.cursor)

		if q.err != nil {
			// Already failed, just reclaim buffers.
			if res.release != nil {
				res.release()
			}
			q.cursor++

			continue
		}

		if res.err != nil {
			q.err = fmt.Errorf("block %d: %w", res.index, res.err)
		} else if err := q.emit(res); err != nil {
			q.err = fmt.Errorf("block %d: %w", res.index, err)
		}

		if res.release != nil {
			res.release()
		}
		q.cursor++
	}
}

// failed reports whether a block error has taken effect. The producer
// polls this to stop submitting new work; results already in flight are
// still collected so their buffers are reclaimed.
func (q *reorderQueue) failed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.err != nil
}

// drain releases any results that never became flushable and returns
// the recorded error. Called once after all workers have stopped.
func (q *reorderQueue) drain() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for idx, res := range q.pending {
		if res.release != nil {
			res.release()
		}
		delete(q.pending, idx)
	}

	return q.err
}
