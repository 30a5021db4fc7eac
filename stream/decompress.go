package stream

import (
	"fmt"
	"io"

	"github.com/zxclab/zxc/checksum"
	"github.com/zxclab/zxc/codec"
	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/frame"
	"github.com/zxclab/zxc/internal/options"
)

// Decompress reads a frame from src, decompresses its blocks in
// parallel, and writes the original bytes to dst in order.
//
// All frame parameters (codec, block size, endianness, checksum) come
// from the frame header; the codec and block shape options have no
// effect here.
//
// Trailer verification is opt-in: pass WithChecksum(true) to have the
// reconstructed bytes hashed and compared against the trailer. The
// comparison happens after every block has been written, so on mismatch
// the already-written output remains on dst and the returned error
// matches errs.ErrChecksumMismatch; callers that need all-or-nothing
// semantics should write to a temporary destination. Without the
// option the trailer is still consumed and reported in the Result, but
// no verification runs.
func Decompress(dst io.Writer, src io.Reader, opts ...Option) (Result, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return Result{}, err
	}
	if cfg.threads < 0 {
		return Result{}, fmt.Errorf("%w: %d", errs.ErrInvalidThreadCount, cfg.threads)
	}
	workers := resolveThreads(cfg.threads)

	fr, err := frame.NewReader(src)
	if err != nil {
		return Result{}, err
	}
	header := fr.Header()

	cdc := cfg.codecImpl
	if cdc == nil {
		cdc, err = codec.Get(header.Flag.Codec())
		if err != nil {
			return Result{}, err
		}
	}

	var (
		acc *checksum.Accumulator
		res Result
	)
	if cfg.checksum && header.Flag.HasChecksum() {
		acc = checksum.NewAccumulator()
	}

	queue := newReorderQueue(func(br blockResult) error {
		if _, err := dst.Write(br.payload); err != nil {
			return err
		}
		if acc != nil {
			acc.Update(br.payload)
		}
		res.BytesWritten += int64(len(br.payload))
		res.Blocks++

		return nil
	})

	workerPool := newWorkerPool(workers, func(j job) {
		decoded, err := cdc.DecodeBlock(j.data)
		if err != nil {
			queue.push(blockResult{index: j.index, err: fmt.Errorf("%w: %v", errs.ErrCodec, err)})

			return
		}
		if uint32(len(decoded)) != j.origLen {
			queue.push(blockResult{
				index: j.index,
				err:   fmt.Errorf("%w: block decoded to %d bytes, header says %d", errs.ErrCorruptFrame, len(decoded), j.origLen),
			})

			return
		}

		queue.push(blockResult{index: j.index, payload: decoded})
	})

	var readErr error
	for !queue.failed() {
		bh, payload, err := fr.Next()
		if err != nil {
			readErr = err

			break
		}
		if bh.IsEOF() {
			break
		}

		workerPool.submit(job{index: bh.Index, data: payload, origLen: bh.OrigLen})
	}

	workerPool.close()
	if err := queue.drain(); err != nil {
		return res, err
	}
	if readErr != nil {
		return res, readErr
	}

	res.BytesRead = fr.BytesRead()

	if header.HasKnownOriginalSize() && uint64(res.BytesWritten) != header.OriginalSize {
		return res, fmt.Errorf("%w: reconstructed %d bytes, header says %d",
			errs.ErrCorruptFrame, res.BytesWritten, header.OriginalSize)
	}

	sum, present, err := fr.ReadTrailer()
	if err != nil {
		return res, err
	}
	if present {
		res.Checksum = sum
		res.BytesRead = fr.BytesRead()
		if acc != nil {
			if got := acc.Sum64(); got != sum {
				return res, fmt.Errorf("%w: computed %016x, trailer %016x", errs.ErrChecksumMismatch, got, sum)
			}
		}
	}

	return res, nil
}
