package session

import (
	"sync"

	"github.com/ncdevice/ncdevice/internal/protocol"
)

// Session is one connected controller's bidirectional channel:
// subscription state plus an unbounded outbound queue. The read pump
// (ws.go) mutates subscriptions and enqueues responses inline with
// command processing; the write pump drains the queue independently,
// so a slow reader never blocks command dispatch.
type Session struct {
	ID string

	mu            sync.Mutex
	subscriptions map[uint32]bool

	outbound *frameQueue
}

// NewSession creates a session with no subscriptions and an empty
// outbound queue.
func NewSession(id string) *Session {
	return &Session{
		ID:            id,
		subscriptions: make(map[uint32]bool),
		outbound:      newFrameQueue(),
	}
}

// SetSubscriptions replaces the session's subscription set wholesale,
// as SubscriptionMessage does.
func (s *Session) SetSubscriptions(oids []uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions = make(map[uint32]bool, len(oids))
	for _, oid := range oids {
		s.subscriptions[oid] = true
	}
}

// Subscriptions returns the session's current subscription set.
func (s *Session) Subscriptions() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	oids := make([]uint32, 0, len(s.subscriptions))
	for oid := range s.subscriptions {
		oids = append(oids, oid)
	}
	return oids
}

// IsSubscribed reports whether the session currently subscribes to
// oid.
func (s *Session) IsSubscribed(oid uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscriptions[oid]
}

// Send enqueues a message for delivery to this session. Never blocks
// the caller.
func (s *Session) Send(msg any) {
	s.outbound.push(msg)
}

// Close shuts down the session's outbound queue, causing its write
// pump to exit once the queue drains.
func (s *Session) Close() {
	s.outbound.close()
}

// NextOutbound blocks until a message is queued for delivery or the
// session is closed and its queue has drained.
func (s *Session) NextOutbound() (any, bool) {
	return s.outbound.next()
}

// Notify enqueues a NotificationMessage carrying a single
// property-change event, used by the fan-out loop.
func (s *Session) Notify(event protocol.PropertyChangedEvent) {
	s.Send(protocol.NewNotificationMessage([]protocol.PropertyChangedEvent{event}))
}
