// Package stream implements the parallel block pipelines that produce and
// consume zxc frames.
//
// Both directions share the same shape: a single producer goroutine splits
// the input into blocks, a fixed pool of workers transforms blocks
// concurrently, and a reorder queue restores stream order before anything
// touches the sink.
//
//	          ┌──────── worker ────────┐
//	producer ─┼──────── worker ────────┼─ reorder queue ─ sink
//	          └──────── worker ────────┘
//
// # Ordering
//
// Workers complete in arbitrary order, but the reorder queue only flushes
// the contiguous prefix of finished blocks. Three consequences follow:
//
//   - Output bytes always appear in input order.
//   - The checksum accumulator sees blocks strictly in order, so the
//     trailer digest is identical for every thread count.
//   - When several blocks fail, the error reported is the one with the
//     lowest block index, again independent of scheduling.
//
// Compressed frames are therefore deterministic for a given input,
// configuration and build.
//
// # Flow control
//
// The producer blocks once the job channel is full (2x the worker count),
// which bounds in-flight memory to a handful of blocks rather than the
// whole input. With WithThreads(1) the pipeline degrades to a plain
// sequential loop with no goroutines at all.
//
// # Failure
//
// A block failure stops the producer, but in-flight blocks are still
// collected so their buffers return to the pools. Output written before
// the failing block stays on the sink; compression callers get a frame
// without an EOF marker, which readers reject as truncated.
package stream
