// Package parallel provides band partitioning and a small worker pool
// for running per-scanline-band compositing jobs concurrently.
package parallel

import (
	"runtime"
	"sync"
)

// Band is a half-open range of scanlines [Y0, Y1).
type Band struct {
	Y0 int
	Y1 int
}

// Height returns the number of scanlines in the band.
func (b Band) Height() int { return b.Y1 - b.Y0 }

// Bands splits height scanlines into at most n contiguous bands of
// near-equal size. It never returns an empty band: when height < n the
// result has fewer than n entries.
func Bands(height, n int) []Band {
	if height <= 0 || n <= 0 {
		return nil
	}
	if n > height {
		n = height
	}
	bands := make([]Band, 0, n)
	per := height / n
	extra := height % n
	y := 0
	for i := 0; i < n; i++ {
		h := per
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}

// Pool runs batches of jobs across a fixed set of goroutines. Unlike a
// long-lived render pool, a Pool exists for one batch at a time: Run
// spawns the workers, feeds them, and waits. Bands of a composite are
// uniform in cost, so there is no need for per-worker queues or work
// stealing here.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given number of workers. Zero or
// negative means GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the worker count.
func (p *Pool) Workers() int { return p.workers }

// Run executes all jobs and returns when the last one finishes. Jobs
// are pulled from a shared channel, so a slow job only delays its own
// worker.
func (p *Pool) Run(jobs []func()) {
	if len(jobs) == 0 {
		return
	}
	if p.workers == 1 || len(jobs) == 1 {
		for _, job := range jobs {
			job()
		}
		return
	}

	queue := make(chan func(), len(jobs))
	for _, job := range jobs {
		queue <- job
	}
	close(queue)

	workers := p.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for job := range queue {
				job()
			}
		}()
	}
	wg.Wait()
}
