// Copyright 2025 go-verify Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool provides a persistent worker pool for splitting an
// index range across goroutines. The property-checking harness uses it to
// evaluate batches of generated inputs in parallel.
//
// Example:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.ParallelFor(len(inputs), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        process(inputs[i])
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single unit of parallel work.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) using the worker pool. Each worker
// processes a contiguous range of indices. Blocks until all work completes.
// A closed pool degrades to sequential execution.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.run(n, func(start, end int) error {
		fn(start, end)
		return nil
	})
}

// ParallelForErr is ParallelFor for work that can fail. It returns the
// error of the lowest-numbered failing range, or nil if every range
// succeeded. All ranges run regardless of failures.
func (p *Pool) ParallelForErr(n int, fn func(start, end int) error) error {
	return p.run(n, fn)
}

func (p *Pool) run(n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}

	// Don't use more workers than items; closed pools run sequentially.
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		return fn(0, n)
	}

	// Chunk size rounds up so all items are covered.
	chunkSize := (n + workers - 1) / workers

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			break
		}
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { errs[i] = fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
