// Package events implements the process-wide PropertyChangedEvent bus
// that carries notifications from model objects (many producers, one
// event per mutation) to the single fan-out loop that dispatches them
// to subscribed sessions. The bus is nil-safe: calling Publish on a
// nil *Bus is a no-op, so model objects do not need guard checks.
package events

import (
	"sync"

	"github.com/ncdevice/ncdevice/internal/protocol"
)

// Bus is an unbounded single-consumer queue. Many producers (model
// objects mutating properties) call Publish concurrently; exactly one
// consumer (the fan-out loop) calls Next in a loop. Publish never
// blocks the producer holding the tree mutex.
type Bus struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []protocol.PropertyChangedEvent
	closed bool
}

// New creates an empty bus ready for use.
func New() *Bus {
	b := &Bus{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Publish appends an event to the queue and wakes the consumer. Safe
// to call on a nil receiver (no-op) and safe to call concurrently from
// any number of goroutines.
func (b *Bus) Publish(e protocol.PropertyChangedEvent) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.queue = append(b.queue, e)
	b.cond.Signal()
}

// Next blocks until an event is available or the bus is closed. The
// second return value is false once the queue has drained after
// Close, mirroring a channel receive's (zero, false) on a closed,
// empty channel.
func (b *Bus) Next() (protocol.PropertyChangedEvent, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.queue) == 0 && !b.closed {
		b.cond.Wait()
	}
	if len(b.queue) == 0 {
		return protocol.PropertyChangedEvent{}, false
	}
	e := b.queue[0]
	b.queue = b.queue[1:]
	return e, true
}

// Close shuts the bus down. Pending events already queued are still
// delivered by subsequent Next calls; once the queue drains, Next
// returns (zero, false). Close is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.cond.Broadcast()
}

// Len reports the number of queued, undelivered events. Useful for
// tests and diagnostics.
func (b *Bus) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}
