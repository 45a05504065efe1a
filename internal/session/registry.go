// Package session implements the control-protocol WebSocket surface:
// one Session per connected controller, a Registry tracking which
// sessions are subscribed to which oids, and the fan-out loop that
// turns tree mutations into per-session notifications.
package session

import "sync"

// Registry tracks every live Session, keyed by its id, and lets the
// fan-out loop find the sessions subscribed to a given oid. The lookup
// holds the registry's read lock and briefly takes each session's own
// lock to check its subscription set.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Add registers s, making it visible to the fan-out loop.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// Remove drops s from the registry, e.g. once its connection closes.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// SubscribersOf returns every session currently subscribed to oid.
func (r *Registry) SubscribersOf(oid uint32) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var subs []*Session
	for _, s := range r.sessions {
		if s.IsSubscribed(oid) {
			subs = append(subs, s)
		}
	}
	return subs
}

// Count returns the number of live sessions, for diagnostics.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
