package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job.
type Result interface {
	GetError() error
}

// Pool runs jobs across a fixed number of workers. Channel buffers are
// sized from the worker count, not the job count, so memory stays flat
// however large the corpus is. That only works when submission and
// draining overlap: submit from one goroutine, consume Wait from
// another, and call Close when the last job is in.
type Pool struct {
	workers    int
	jobQueue   chan Job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeQueue sync.Once
	closeDone  sync.Once
}

// NewPool creates a pool with the given worker count. The context
// bounds every job; cancelling it stops the pool.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2),
		results:    make(chan Result, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues one job. It blocks when the queue is full and becomes
// a no-op once the pool is shut down.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Close signals that no more jobs will be submitted. Workers exit once
// the queue drains.
func (p *Pool) Close() {
	p.closeQueue.Do(func() {
		close(p.jobQueue)
	})
}

// Wait drains results until every worker has exited, invoking onResult
// for each as it lands, and returns them all. Exactly one goroutine
// may call Wait.
func (p *Pool) Wait(onResult func(Result)) []Result {
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []Result
	for result := range p.results {
		if onResult != nil {
			onResult(result)
		}
		results = append(results, result)
	}
	return results
}

// Shutdown cancels in-flight jobs and stops the pool.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeDone.Do(func() {
		close(p.results)
	})
}
