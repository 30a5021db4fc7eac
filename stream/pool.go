package stream

import (
	"runtime"
	"sync"
)

// job is one block handed to the worker pool.
type job struct {
	index   uint32
	data    []byte
	origLen uint32 // expected decoded length, decompression only
	release func() // returns the data buffer to its pool, may be nil
}

// resolveThreads maps the user-facing thread count to an effective
// worker count. Zero selects one worker per CPU; the resolution happens
// exactly once per pipeline so a stream sees a stable count even if
// GOMAXPROCS changes mid-flight.
func resolveThreads(threads int) int {
	if threads == 0 {
		return runtime.NumCPU()
	}

	return threads
}

// workerPool fans jobs out to a fixed set of goroutines.
//
// The jobs channel holds at most 2x the worker count, which bounds how
// far the producer can run ahead of the workers and therefore how many
// block buffers are alive at once (backpressure).
//
// With a single worker the pool runs jobs inline on the submitting
// goroutine: no goroutines, no channels, deterministic sequential
// execution. This is the degraded mode used for threads=1.
type workerPool struct {
	process func(job)
	jobs    chan job
	wg      sync.WaitGroup
	inline  bool
}

func newWorkerPool(workers int, process func(job)) *workerPool {
	p := &workerPool{process: process}

	if workers <= 1 {
		p.inline = true

		return p
	}

	p.jobs = make(chan job, workers*2)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				p.process(j)
			}
		}()
	}

	return p
}

// submit schedules one job. In inline mode it runs the job before
// returning; otherwise it blocks while the jobs channel is full.
func (p *workerPool) submit(j job) {
	if p.inline {
		p.process(j)

		return
	}

	p.jobs <- j
}

// close stops accepting jobs and blocks until every submitted job has
// been processed.
func (p *workerPool) close() {
	if p.inline {
		return
	}

	close(p.jobs)
	p.wg.Wait()
}
