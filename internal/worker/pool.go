// Package worker replays activation scripts in parallel.
// Each script gets its own game controller, so workers share no game state.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// WorkItem is one script queued for replay.
type WorkItem struct {
	Name        string
	Activations []chess.Square
	Index       int // Position in the input, used to restore order
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Index  int
	Name   string
	GameID uuid.UUID

	// History holds the newest move records, oldest first. It may be
	// shorter than Moves when a history limit applies.
	History    []string
	Status     game.Status
	StatusText string
	Moves      int // Activations that moved a piece
	Rejected   int // Activations that were rejected or deselected a piece
	Error      error
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of goroutines.
type Pool struct {
	workers int
	queue   int
	replay  ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	stopped atomic.Bool
	skipped atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the queue length of both channels. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.queue = size
		}
	}
}

// NewPool creates a pool that runs fn on every submitted item.
// Default: 1 worker, queue length 10.
func NewPool(fn ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, queue: 10, replay: fn}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.queue)
	p.results = make(chan ProcessResult, p.queue)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			p.skipped.Add(1)
			continue
		}
		p.results <- p.replay(item)
	}
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// Stop makes the workers drop queued items instead of replaying them.
// Items already being replayed still deliver their result.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Skipped returns how many items were dropped after Stop.
// It is final once the result channel is closed.
func (p *Pool) Skipped() int {
	return int(p.skipped.Load())
}

// Close ends submission and waits for the workers. The result channel is
// closed once every worker is done.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
