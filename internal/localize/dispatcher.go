package localize

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Mode selects when a dispatched localize call runs.
type Mode string

const (
	// ModeSync runs the call inline and returns its error.
	ModeSync Mode = "sync"
	// ModeQueue hands the call to the worker goroutine; Dispatch returns
	// once the job is enqueued. Both modes persist identical rows.
	ModeQueue Mode = "queue"
)

var ErrDispatcherClosed = errors.New("dispatcher closed")

type job struct {
	gameID uint
	lang   string
}

// Dispatcher is the single entry point for running the localization pipeline
// either now or later, chosen by the caller through Mode.
type Dispatcher struct {
	pipeline *Pipeline
	mode     Mode

	jobs    chan job
	done    chan struct{}
	wg      sync.WaitGroup
	senders sync.WaitGroup
	closeMu sync.Mutex
	closed  bool
}

func NewDispatcher(pipeline *Pipeline, mode Mode, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		pipeline: pipeline,
		mode:     mode,
		jobs:     make(chan job, queueSize),
		done:     make(chan struct{}),
	}
}

// Start launches the queue worker. It is a no-op in sync mode.
func (d *Dispatcher) Start(ctx context.Context) {
	if d.mode != ModeQueue {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case j, ok := <-d.jobs:
				if !ok {
					return
				}
				if err := d.pipeline.Localize(ctx, j.gameID, j.lang); err != nil {
					log.Printf("localize game %d (%s) failed: %v", j.gameID, j.lang, err)
				}
			}
		}
	}()
}

// Dispatch runs the localize call per the configured mode. In sync mode the
// pipeline error is returned; in queue mode only enqueue failures are.
func (d *Dispatcher) Dispatch(ctx context.Context, gameID uint, lang string) error {
	if d.mode != ModeQueue {
		return d.pipeline.Localize(ctx, gameID, lang)
	}

	// The lock only covers the closed check; the send must not hold it,
	// or a full queue would block Close behind us.
	d.closeMu.Lock()
	if d.closed {
		d.closeMu.Unlock()
		return ErrDispatcherClosed
	}
	d.senders.Add(1)
	d.closeMu.Unlock()
	defer d.senders.Done()

	select {
	case d.jobs <- job{gameID: gameID, lang: lang}:
		return nil
	case <-d.done:
		return ErrDispatcherClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Localize delegates to Dispatch so the dispatcher can stand in wherever a
// direct pipeline is expected.
func (d *Dispatcher) Localize(ctx context.Context, gameID uint, lang string) error {
	return d.Dispatch(ctx, gameID, lang)
}

// Close stops accepting jobs, unblocks pending Dispatch calls and waits for
// the worker to drain the queue.
func (d *Dispatcher) Close() {
	d.closeMu.Lock()
	if d.closed {
		d.closeMu.Unlock()
		return
	}
	d.closed = true
	close(d.done)
	d.closeMu.Unlock()

	d.senders.Wait()
	close(d.jobs)
	d.wg.Wait()
}
