package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
)

// ErrDispatcherClosed is returned by Enqueue after Shutdown
var ErrDispatcherClosed = errors.New("dispatcher is shut down")

// HandleFunc processes one event
type HandleFunc func(ctx context.Context, event entity.MessageEvent) error

// Dispatcher runs events sequentially per sender and concurrently across senders.
// A sender's worker lives only while that sender has pending events.
type Dispatcher struct {
	handle    HandleFunc
	queueSize int
	logger    coreport.Logger

	mu     sync.Mutex
	queues map[int64]*senderQueue
	closed bool
	wg     sync.WaitGroup
}

type senderQueue struct {
	jobs    chan job
	pending int // guarded by Dispatcher.mu
}

type job struct {
	ctx   context.Context
	event entity.MessageEvent
}

// NewDispatcher creates a dispatcher; queueSize bounds the buffered events per sender
func NewDispatcher(handle HandleFunc, queueSize int, logger coreport.Logger) *Dispatcher {
	if handle == nil {
		panic("dispatcher handle function cannot be nil")
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		handle:    handle,
		queueSize: queueSize,
		logger:    logger,
		queues:    make(map[int64]*senderQueue),
	}
}

// Enqueue hands the event to its sender's worker, starting one if needed.
// It blocks while that sender's queue is full. Processing runs on a context
// that keeps ctx's values but not its cancellation, so queued events are
// drained during shutdown.
func (d *Dispatcher) Enqueue(ctx context.Context, event entity.MessageEvent) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	q, ok := d.queues[event.SenderID]
	if !ok {
		q = &senderQueue{jobs: make(chan job, d.queueSize)}
		d.queues[event.SenderID] = q
		d.wg.Add(1)
		go d.work(event.SenderID, q)
	}
	q.pending++
	d.mu.Unlock()

	q.jobs <- job{ctx: context.WithoutCancel(ctx), event: event}
	return nil
}

func (d *Dispatcher) work(senderID int64, q *senderQueue) {
	defer d.wg.Done()

	for {
		j := <-q.jobs
		d.run(j)

		d.mu.Lock()
		q.pending--
		if q.pending == 0 {
			delete(d.queues, senderID)
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()
	}
}

func (d *Dispatcher) run(j job) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic while handling update", map[string]any{
				"updateId": j.event.UpdateID,
				"userId":   j.event.SenderID,
				"panic":    fmt.Sprint(r),
			})
		}
	}()

	if err := d.handle(j.ctx, j.event); err != nil {
		d.logger.Warn("Update handled with error", map[string]any{
			"updateId": j.event.UpdateID,
			"userId":   j.event.SenderID,
			"error":    err,
		})
	}
}

// Active is the number of senders with pending events
func (d *Dispatcher) Active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queues)
}

// Shutdown rejects new events and waits until every queued event is handled or ctx ends
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.logger.Info("Draining dispatcher", map[string]any{"senders": d.Active()})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Dispatcher stopped", nil)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("dispatcher drain: %w", ctx.Err())
	}
}
