package mesh

import (
	"fmt"
	"sync"
)

// Pool is a fixed-size worker pool for the data-parallel build stages.
// Workers drain a shared task queue; ForEach blocks until every task of
// the call has completed, which is the barrier between pipeline stages.
type Pool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
}

// NewPool starts a pool with the given number of workers.
func NewPool(workers int) (*Pool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: pool needs at least 1 worker, got %d", ErrInvalidArgument, workers)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p, nil
}

// Workers returns the worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach runs fn(i) for every i in [0, n), split into contiguous chunks
// across the workers, and returns only after all of them have finished.
// Calls from different goroutines share the same workers and may overlap;
// each call has its own completion barrier. fn must write only state owned
// by index i.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	chunk := n / p.workers
	if chunk < 1 {
		chunk = 1
	}

	var done sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		done.Add(1)
		lo, hi := lo, hi
		p.tasks <- func() {
			defer done.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}
	}
	done.Wait()
}

// Close shuts the pool down and waits for the workers to exit. No ForEach
// may be in flight or issued afterwards.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
