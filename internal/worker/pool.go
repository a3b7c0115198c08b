// Package worker runs independent page extractions concurrently. Page
// builds share only read-only state, so the pool imposes no ordering;
// callers needing deterministic output sort the results.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of work
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job
type Result interface {
	GetError() error
}

// Pool fans jobs out to a fixed number of workers. Submission and result
// collection run concurrently, so any number of jobs can flow through the
// fixed-size channels without blocking the producer against the consumer.
type Pool struct {
	workers int
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
	once    sync.Once
}

// NewPool creates a pool with the given number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan Job),
		results: make(chan Result, workers),
	}
}

// Start launches the workers. Results must be drained via Results; the
// channel is closed once every submitted job has finished.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

func (p *Pool) run(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			select {
			case p.results <- job.Execute(ctx):
			case <-ctx.Done():
				return
			}
		}
	}
}

// Submit queues one job, giving up when the context ends. Must not be
// called after Done.
func (p *Pool) Submit(ctx context.Context, job Job) bool {
	select {
	case p.jobs <- job:
		return true
	case <-ctx.Done():
		return false
	}
}

// Done signals that no more jobs will be submitted. Safe to call more than
// once.
func (p *Pool) Done() {
	p.once.Do(func() { close(p.jobs) })
}

// Results is the stream of job outcomes, closed when the pool drains
func (p *Pool) Results() <-chan Result {
	return p.results
}
