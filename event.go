package gui

import "sync"

// Event is an opaque event token. Handlers are connected once, typically at
// window construction; Trigger may then be called from any goroutine and the
// handlers always execute on the UI thread.
//
// Delivery is FIFO per token: two Trigger calls on the same token are
// observed by the handlers in trigger order. No ordering is guaranteed
// between different tokens beyond the global queue order.
type Event struct {
	mu       sync.Mutex
	handlers []func(arg any)
}

// NewEvent creates an event token.
func NewEvent() *Event {
	return &Event{}
}

// Connect registers a handler for the event. Handlers run on the UI thread
// in registration order.
func (e *Event) Connect(handler func(arg any)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
}

func (e *Event) invoke(arg any) {
	e.mu.Lock()
	handlers := make([]func(any), len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.Unlock()
	for _, h := range handlers {
		h(arg)
	}
}

type queuedEvent struct {
	event *Event
	arg   any
}

// eventQueue is the thread-safe FIFO behind Trigger. The producing side may
// run on any goroutine; drain runs on the UI thread only.
type eventQueue struct {
	mu      sync.Mutex
	pending []queuedEvent
}

func (q *eventQueue) push(ev *Event, arg any) {
	q.mu.Lock()
	q.pending = append(q.pending, queuedEvent{event: ev, arg: arg})
	q.mu.Unlock()
}

// drain delivers all queued events in FIFO order. Events triggered by a
// handler during the drain are delivered in the same pass.
func (q *eventQueue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()
		for _, qe := range batch {
			qe.event.invoke(qe.arg)
		}
	}
}
