package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/zxclab/zxc/checksum"
	"github.com/zxclab/zxc/errs"
	"github.com/zxclab/zxc/frame"
	"github.com/zxclab/zxc/internal/options"
	"github.com/zxclab/zxc/internal/pool"
)

// Result reports what a pipeline did, for callers that surface stats.
type Result struct {
	// BytesRead is the number of bytes consumed from the source.
	BytesRead int64
	// BytesWritten is the number of bytes produced on the sink.
	BytesWritten int64
	// Blocks is the number of data blocks processed.
	Blocks uint32
	// Checksum is the xxHash64 digest of the original bytes. Only
	// meaningful when the frame carries a checksum trailer.
	Checksum uint64
}

// Compress reads original bytes from src, compresses them block by
// block in parallel, and writes a complete frame to dst.
//
// The frame on dst is deterministic for a given input, configuration
// and build: blocks appear in input order regardless of thread count or
// worker scheduling.
//
// On failure the frame on dst is incomplete (no EOF marker) and the
// returned error identifies the lowest-indexed block that failed.
func Compress(dst io.Writer, src io.Reader, opts ...Option) (Result, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return Result{}, err
	}

	workers, cdc, err := cfg.resolve()
	if err != nil {
		return Result{}, err
	}

	header := frame.NewHeader(cfg.blockSize)
	header.OriginalSize = cfg.originalSize
	header.Flag.SetCodec(cfg.codecType)
	header.Flag.SetChecksum(cfg.checksum)
	header.Flag.Level = uint8(cfg.level)

	fw := frame.NewWriter(dst, header)
	if err := fw.WriteHeader(); err != nil {
		return Result{}, err
	}

	var (
		acc *checksum.Accumulator
		res Result
	)
	if cfg.checksum {
		acc = checksum.NewAccumulator()
	}

	queue := newReorderQueue(func(br blockResult) error {
		bh := frame.BlockHeader{
			Index:   br.index,
			OrigLen: uint32(len(br.original)),
			CompLen: uint32(len(br.payload)),
		}
		if err := fw.WriteBlock(bh, br.payload); err != nil {
			return err
		}
		if acc != nil {
			acc.Update(br.original)
		}
		res.Blocks++

		return nil
	})

	workerPool := newWorkerPool(workers, func(j job) {
		encoded, err := cdc.EncodeBlock(j.data, cfg.level)
		if err != nil {
			j.release()
			queue.push(blockResult{index: j.index, err: fmt.Errorf("%w: %v", errs.ErrCodec, err)})

			return
		}

		queue.push(blockResult{
			index:    j.index,
			payload:  encoded,
			original: j.data,
			release:  j.release,
		})
	})

	var (
		readErr error
		next    uint32
	)
	for !queue.failed() {
		chunk, release := pool.GetChunk(int(cfg.blockSize))
		n, err := io.ReadFull(src, chunk)
		if n > 0 {
			res.BytesRead += int64(n)
			workerPool.submit(job{index: next, data: chunk[:n], release: release})
			next++
		} else {
			release()
		}

		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				readErr = err
			}

			break
		}
	}

	workerPool.close()
	if err := queue.drain(); err != nil {
		return res, err
	}
	if readErr != nil {
		return res, readErr
	}

	if err := fw.WriteEOF(); err != nil {
		return res, err
	}
	if acc != nil {
		res.Checksum = acc.Sum64()
		if err := fw.WriteTrailer(res.Checksum); err != nil {
			return res, err
		}
	}

	res.BytesWritten = fw.BytesWritten()

	return res, nil
}
