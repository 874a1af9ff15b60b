package renderer

import (
	"runtime"
	"sync"
)

// WorkerPool runs queued jobs on a fixed number of goroutines. Jobs
// are plain closures; the pool knows nothing about pixels or rows.
//
// Two ways to finish: Drain closes the queue and lets the workers
// finish every queued job, Shutdown tells the workers to stop picking
// up queued jobs. Both block until every worker has exited.
type WorkerPool struct {
	jobs       chan func()
	quit       chan struct{}
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// NewWorkerPool creates a pool with the given worker count (<= 0 uses
// the CPU count) and queue capacity.
func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		jobs:       make(chan func(), queueSize),
		quit:       make(chan struct{}),
		numWorkers: numWorkers,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int { return wp.numWorkers }

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Submit queues a job. It must not be called after Drain.
func (wp *WorkerPool) Submit(job func()) {
	wp.jobs <- job
}

// Drain closes the queue, lets the workers finish all remaining jobs,
// and returns once every worker has exited.
func (wp *WorkerPool) Drain() {
	close(wp.jobs)
	wp.wg.Wait()
}

// Shutdown stops the pool without draining: no further queued job
// starts, and Shutdown returns only after every in-flight job has
// completed and its worker has exited.
func (wp *WorkerPool) Shutdown() {
	wp.stopOnce.Do(func() { close(wp.quit) })
	wp.wg.Wait()
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.quit:
			return
		case job, ok := <-wp.jobs:
			if !ok {
				return
			}
			// A job taken after Shutdown fired is abandoned, not run.
			select {
			case <-wp.quit:
				return
			default:
			}
			job()
		}
	}
}
