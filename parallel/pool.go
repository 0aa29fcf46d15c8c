// Package parallel runs independent tasks over a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
)

// Pool fans submitted tasks out to its workers. A single-worker pool runs
// every task inline on the submitting goroutine, keeping execution fully
// sequential.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	stop  sync.Once
}

// Start launches a pool with the given number of workers. Values below one
// mean one worker per CPU.
func Start(workers int) *Pool {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{}
	if workers == 1 {
		return p
	}

	p.tasks = make(chan func(), workers)
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for f := range p.tasks {
				f()
			}
		}()
	}
	return p
}

// Submit queues f for execution. Must not be called after Drain.
func (p *Pool) Submit(f func()) {
	if p.tasks == nil {
		f()
		return
	}
	p.tasks <- f
}

// Drain stops accepting work and blocks until every submitted task finished.
func (p *Pool) Drain() {
	if p.tasks == nil {
		return
	}
	p.stop.Do(func() { close(p.tasks) })
	p.wg.Wait()
}
