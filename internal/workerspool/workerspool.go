// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package workerspool runs tasks in goroutines, limiting how many run at the same time.
package workerspool

import (
	"runtime"
	"sync"
)

// Pool of workers. Create it with New.
type Pool struct {
	maxParallelism int
	mu             sync.Mutex
	cond           sync.Cond // Signaled whenever numRunning is decreased.
	numRunning     int
}

// New returns a Pool running at most maxParallelism tasks at a time.
// If maxParallelism <= 0, it uses runtime.NumCPU().
func New(maxParallelism int) *Pool {
	if maxParallelism <= 0 {
		maxParallelism = runtime.NumCPU()
	}
	p := &Pool{maxParallelism: maxParallelism}
	p.cond = sync.Cond{L: &p.mu}
	return p
}

// MaxParallelism returns the maximum number of tasks running at the same time.
func (p *Pool) MaxParallelism() int {
	return p.maxParallelism
}

// Go waits until a worker is available and then runs task in a new goroutine.
func (p *Pool) Go(task func()) {
	p.mu.Lock()
	for p.numRunning >= p.maxParallelism {
		p.cond.Wait()
	}
	p.numRunning++
	p.mu.Unlock()

	go func() {
		defer func() {
			p.mu.Lock()
			p.numRunning--
			p.cond.Broadcast()
			p.mu.Unlock()
		}()
		task()
	}()
}

// Wait until all tasks started with Go have finished.
func (p *Pool) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.numRunning > 0 {
		p.cond.Wait()
	}
}
