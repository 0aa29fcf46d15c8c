package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryTask(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		var count atomic.Uint64

		pool := Start(workers)
		for i := 0; i < 100; i++ {
			pool.Submit(func() { count.Add(1) })
		}
		pool.Drain()

		if got := count.Load(); got != 100 {
			t.Errorf("workers=%d: ran %d tasks, expected 100", workers, got)
		}
	}
}

func TestPoolSingleWorkerIsInline(t *testing.T) {
	pool := Start(1)

	ran := false
	pool.Submit(func() { ran = true })
	if !ran {
		t.Error("single-worker pool deferred a task instead of running it inline")
	}
	pool.Drain()
}

func TestPoolDrainTwice(t *testing.T) {
	pool := Start(4)
	pool.Submit(func() {})
	pool.Drain()
	pool.Drain()
}

func TestPoolDefaultWorkers(t *testing.T) {
	var count atomic.Uint64

	pool := Start(0)
	for i := 0; i < 10; i++ {
		pool.Submit(func() { count.Add(1) })
	}
	pool.Drain()

	if got := count.Load(); got != 10 {
		t.Errorf("ran %d tasks, expected 10", got)
	}
}
