// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for row-parallel image
// computation. A Pool is created once and reused across many images, so
// repeated renders (benchmarks, zoom sequences) do not pay goroutine spawn
// and channel allocation costs per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(height, func(row int) {
//	    computeRow(row)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// block on a shared queue until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool

	// sendMu is held for reading while a call queues its tasks and for
	// writing while Close closes workC.
	sendMu sync.RWMutex
}

// task is one worker's share of a parallel call. Every task of a call
// shares the same barrier.
type task struct {
	run     func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.run()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe, and so is calling it while other
// goroutines are inside a Parallel* call: those calls finish their work on
// the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.sendMu.Lock()
		defer p.sendMu.Unlock()
		p.closed.Store(true)
		close(p.workC)
	})
}

// fanOut hands the same body to workers tasks and waits for all of them.
// On a closed pool it runs body workers times on the calling goroutine.
func (p *Pool) fanOut(workers int, body func()) {
	p.sendMu.RLock()
	if p.closed.Load() {
		p.sendMu.RUnlock()
		for range workers {
			body()
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{run: body, barrier: &wg}
	}
	p.sendMu.RUnlock()
	wg.Wait()
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker. Blocks until all ranges complete. A closed pool runs fn(0, n)
// on the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var next atomic.Int64
	p.fanOut(workers, func() {
		start := int(next.Add(1)-1) * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic executes fn for each index in [0, n), with workers
// claiming indices one at a time from a shared counter. This balances load
// when the cost per index varies, as it does between rows crossing the
// set interior and rows that escape immediately.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched executes fn over [0, n) in batches of batchSize
// indices, each claimed atomically by whichever worker is free. Blocks until
// every batch completes.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	p.fanOut(workers, func() {
		for {
			start := int(nextBatch.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
