package store

import (
	"log"
	"runtime/debug"
	"sync"
)

// subscriber owns one listener's delivery queue. States are appended by
// Dispatch and drained in order by a dedicated goroutine, so a single
// subscriber sees a monotonically increasing sequence of states: none
// skipped, none reordered. The queue is unbounded; backpressure would
// otherwise force Dispatch to either block or skip states.
type subscriber struct {
	id string
	fn Listener

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []State
	stopped bool
}

func newSubscriber(id string, fn Listener) *subscriber {
	sub := &subscriber{id: id, fn: fn}
	sub.cond = sync.NewCond(&sub.mu)
	return sub
}

// enqueue appends a state for delivery. Never blocks.
func (sub *subscriber) enqueue(s State) {
	sub.mu.Lock()
	if !sub.stopped {
		sub.queue = append(sub.queue, s)
		sub.cond.Signal()
	}
	sub.mu.Unlock()
}

// run drains the queue until stop is called. One goroutine per subscriber.
func (sub *subscriber) run() {
	for {
		sub.mu.Lock()
		for len(sub.queue) == 0 && !sub.stopped {
			sub.cond.Wait()
		}
		if sub.stopped {
			sub.mu.Unlock()
			return
		}
		next := sub.queue[0]
		sub.queue = sub.queue[1:]
		sub.mu.Unlock()

		sub.safeCall(next)
	}
}

// stop terminates the delivery goroutine and drops undelivered states.
func (sub *subscriber) stop() {
	sub.mu.Lock()
	sub.stopped = true
	sub.queue = nil
	sub.cond.Signal()
	sub.mu.Unlock()
}

// safeCall invokes the listener and recovers from panics, ensuring one
// misbehaving listener cannot kill its own delivery goroutine mid-queue.
func (sub *subscriber) safeCall(s State) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: store listener %s panicked: %v\n%s", sub.id, r, debug.Stack())
		}
	}()
	sub.fn(s)
}
