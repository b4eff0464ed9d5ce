package annotate

import (
	"context"
	"sync"
)

// Job is a unit of work submitted to the WorkerPool.
type Job func(ctx context.Context) error

// WorkerPool runs jobs on a fixed number of goroutines. It parallelizes the
// CPU-bound per-line annotation work (tokenization, lookups, romanization).
type WorkerPool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int
	closeMu sync.Mutex
	closed  bool
}

// NewWorkerPool creates a pool with the given worker count and queue
// capacity.
func NewWorkerPool(workers, queue int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &WorkerPool{
		jobs:    make(chan Job, queue),
		workers: workers,
	}
}

// Start begins the worker goroutines; they run until ctx is done or Close
// drains the queue.
func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					_ = job(ctx)
				}
			}
		}()
	}
}

// Submit enqueues a job. Returns ErrPoolClosed after Close.
func (p *WorkerPool) Submit(job Job) error {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.jobs <- job
	return nil
}

// Close stops accepting jobs and waits for workers to drain the queue.
func (p *WorkerPool) Close() {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.closeMu.Unlock()
	p.wg.Wait()
}

// ErrPoolClosed is returned if a Submit is attempted after Close.
var ErrPoolClosed = &PoolError{"worker pool closed"}

// PoolError is a typed error for pool operations.
type PoolError struct{ msg string }

func (e *PoolError) Error() string { return e.msg }

// AnnotateAll annotates each text concurrently on a fixed pool, preserving
// input order via index-addressed results. Per-token work is independent
// across lines and the shared cache tolerates concurrent misses. If ctx is
// canceled mid-run, unprocessed slots remain nil.
func AnnotateAll(ctx context.Context, a *Annotator, texts []string, workers int) [][]Token {
	results := make([][]Token, len(texts))
	if len(texts) == 0 {
		return results
	}
	if workers <= 1 {
		for i, text := range texts {
			results[i] = a.Annotate(text)
		}
		return results
	}

	// Queue sized to the input so Submit never blocks.
	pool := NewWorkerPool(workers, len(texts))
	pool.Start(ctx)
	for i, text := range texts {
		i, text := i, text
		_ = pool.Submit(func(context.Context) error {
			results[i] = a.Annotate(text)
			return nil
		})
	}
	pool.Close()
	return results
}
