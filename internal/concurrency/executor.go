// File: internal/concurrency/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches apply jobs across worker goroutines, using
// lock-free local rings with a shared FIFO overflow queue behind them.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"
)

// Job is one unit of work: applying a single edit batch.
type Job func()

// Executor manages a pool of worker goroutines.
type Executor struct {
	local []*Ring[Job]
	next  atomic.Uint64 // round-robin submission counter

	overflowMu sync.Mutex
	overflow   *queue.Queue // shared FIFO taking ring overflow

	closed atomic.Bool
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// localRingCapacity bounds each worker's fast queue.
const localRingCapacity = 1024

// NewExecutor creates an Executor with the given number of workers.
// Non-positive counts default to runtime.NumCPU().
func NewExecutor(numWorkers int) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	e := &Executor{
		local:    make([]*Ring[Job], numWorkers),
		overflow: queue.New(),
		stopCh:   make(chan struct{}),
	}
	for i := 0; i < numWorkers; i++ {
		e.local[i] = NewRing[Job](localRingCapacity)
	}
	for i := 0; i < numWorkers; i++ {
		e.wg.Add(1)
		go e.run(i)
	}
	return e
}

// Submit enqueues a job. Returns ErrExecutorClosed after Close.
func (e *Executor) Submit(job Job) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}
	idx := int(e.next.Add(1) % uint64(len(e.local)))
	if e.local[idx].Enqueue(job) {
		return nil
	}
	e.overflowMu.Lock()
	e.overflow.Add(job)
	e.overflowMu.Unlock()
	return nil
}

// NumWorkers returns the worker count.
func (e *Executor) NumWorkers() int {
	return len(e.local)
}

// Close shuts down the executor and waits for workers to exit. Jobs still
// queued at that point are discarded.
func (e *Executor) Close() {
	if e.closed.CompareAndSwap(false, true) {
		close(e.stopCh)
		e.wg.Wait()
	}
}

func (e *Executor) run(id int) {
	defer e.wg.Done()
	local := e.local[id]
	for {
		select {
		case <-e.stopCh:
			return
		default:
		}
		if job, ok := local.Dequeue(); ok {
			safeExecute(job)
			continue
		}
		if job, ok := e.popOverflow(); ok {
			safeExecute(job)
			continue
		}
		time.Sleep(time.Millisecond)
	}
}

func (e *Executor) popOverflow() (Job, bool) {
	e.overflowMu.Lock()
	defer e.overflowMu.Unlock()
	if e.overflow.Length() == 0 {
		return nil, false
	}
	return e.overflow.Remove().(Job), true
}

func safeExecute(job Job) {
	defer func() { recover() }()
	job()
}
