package engine

import (
	"context"
	"sync"
	"time"
)

// dispatchQueueSize bounds the work queued for the dispatch goroutine.
const dispatchQueueSize = 64

// Ticking is a periodic source serviced on the dispatch goroutine.
type Ticking interface {
	C() <-chan time.Time
	Tick()
}

// Poster hands work to the dispatch goroutine.
type Poster interface {
	Post(fn func()) bool
}

// Dispatcher runs posted work and animation ticks on one goroutine, so the
// state they touch needs no locks.
type Dispatcher struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewDispatcher creates an idle dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		queue: make(chan func(), dispatchQueueSize),
		done:  make(chan struct{}),
	}
}

// Post queues fn. It returns false once the dispatcher has exited.
func (d *Dispatcher) Post(fn func()) bool {
	select {
	case <-d.done:
		return false
	default:
	}
	select {
	case d.queue <- fn:
		return true
	case <-d.done:
		return false
	}
}

// Done is closed when Run returns.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// Run services posted work and ticks from src until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context, src Ticking) {
	defer d.once.Do(func() { close(d.done) })
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-d.queue:
			fn()
		case <-src.C():
			src.Tick()
		}
	}
}
