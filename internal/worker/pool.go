// Package worker runs self-play games concurrently.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// WorkItem describes one game to be played.
type WorkItem struct {
	Index int
	Seed  int64
	FEN   string
}

// ProcessResult holds the outcome of one work item.
type ProcessResult struct {
	Index  int
	Record *chess.GameRecord
	Error  error
}

// ProcessFunc plays a single work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a set of workers playing games in parallel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	items       chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
	closeOnce   sync.Once
	ctx         context.Context
	cancel      context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size > 0 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless the
// options say otherwise. The pool is bound to ctx: cancelling it stops
// the workers after their current game.
func NewPool(ctx context.Context, fn ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: fn,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.items {
		if p.ctx.Err() != nil {
			// Drain so Submit never blocks on a cancelled pool.
			continue
		}
		result := p.processFunc(p.ctx, item)
		select {
		case p.results <- result:
		case <-p.ctx.Done():
		}
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// false if the pool has been stopped or its context cancelled.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() || p.ctx.Err() != nil {
		return false
	}
	select {
	case p.items <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Stop refuses further submissions and cancels games not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
	p.cancel()
}

// IsStopped reports whether Stop was called or the context cancelled.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load() || p.ctx.Err() != nil
}

// Close stops accepting work, waits for the workers and closes the results
// channel. It is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.stopped.Store(true)
		close(p.items)
		p.wg.Wait()
		close(p.results)
		p.cancel()
	})
}

// Results returns the channel of finished games. It is closed by Close.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
