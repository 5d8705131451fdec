// Package parallel provides a small worker pool for fanning independent
// block computations out across goroutines.
//
// The pool is level-synchronous by design: callers submit a batch of
// tasks, wait for the batch to drain, then submit the next. This matches
// bottom-up cache generation, where each recursion level depends on the
// previous level being fully populated but blocks within a level are
// independent.
package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool runs submitted tasks on a fixed set of worker goroutines.
//
// Thread safety: Submit and Wait may be called from one goroutine while
// workers run; Submit must not be called concurrently with Close.
type WorkerPool struct {
	// tasks carries submitted work to the workers.
	tasks chan func()

	// pending tracks submitted but unfinished tasks for Wait.
	pending sync.WaitGroup

	// workers waits for worker goroutines to exit on Close.
	workers sync.WaitGroup

	closeOnce sync.Once
}

// NewWorkerPool creates a pool with the specified number of workers and
// starts them immediately. If workers is 0 or negative, GOMAXPROCS is
// used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Buffered queue so submitters rarely block on slow workers.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		tasks: make(chan func(), queueSize),
	}

	p.workers.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine. It exits when the
// task channel is closed and drained.
func (p *WorkerPool) worker() {
	defer p.workers.Done()
	for task := range p.tasks {
		task()
		p.pending.Done()
	}
}

// Submit queues a task for execution. It blocks only when the queue is
// full. Submitting to a closed pool panics.
func (p *WorkerPool) Submit(task func()) {
	p.pending.Add(1)
	p.tasks <- task
}

// Wait blocks until every submitted task has finished.
func (p *WorkerPool) Wait() {
	p.pending.Wait()
}

// Close stops the workers after the queued tasks finish. Close is
// idempotent and waits for the workers to exit.
func (p *WorkerPool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.workers.Wait()
}
