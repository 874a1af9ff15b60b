package renderer

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPool_DrainRunsAllJobs(t *testing.T) {
	const jobs = 100

	pool := NewWorkerPool(4, jobs)
	pool.Start()

	var counter int64
	for i := 0; i < jobs; i++ {
		pool.Submit(func() { atomic.AddInt64(&counter, 1) })
	}
	pool.Drain()

	if got := atomic.LoadInt64(&counter); got != jobs {
		t.Errorf("Expected all %d jobs to run, got %d", jobs, got)
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0, 1)
	if pool.NumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.NumWorkers())
	}
}

func TestWorkerPool_ShutdownAbandonsQueuedJobs(t *testing.T) {
	const queued = 10

	pool := NewWorkerPool(1, queued+1)
	pool.Start()

	started := make(chan struct{})
	release := make(chan struct{})
	var inFlightDone int64
	pool.Submit(func() {
		close(started)
		<-release
		atomic.StoreInt64(&inFlightDone, 1)
	})
	<-started

	// The single worker is blocked in the first job; these stay queued.
	var queuedRan int64
	for i := 0; i < queued; i++ {
		pool.Submit(func() { atomic.AddInt64(&queuedRan, 1) })
	}

	shutdownDone := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(shutdownDone)
	}()

	// Wait until the stop signal is visible before letting the in-flight
	// job finish, so the worker cannot pick up another queued job first.
	<-pool.quit
	close(release)
	<-shutdownDone

	if atomic.LoadInt64(&inFlightDone) != 1 {
		t.Error("Expected Shutdown to wait for the in-flight job to complete")
	}
	if got := atomic.LoadInt64(&queuedRan); got != 0 {
		t.Errorf("Expected no queued job to run after Shutdown, got %d", got)
	}
}

func TestWorkerPool_ShutdownIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(2, 1)
	pool.Start()

	pool.Shutdown()
	pool.Shutdown() // second call must not panic or deadlock
}
