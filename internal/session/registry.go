package session

import (
	"fmt"
	"sync"
)

// ErrDuplicateSession is returned when registering an id that is already
// taken.
var ErrDuplicateSession = fmt.Errorf("session id already registered")

// Registry maps session ids to managers. It is safe for concurrent use;
// each manager it hands out is still driven by one goroutine at a time.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Manager
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Manager)}
}

// Register stores a manager under its id.
func (r *Registry) Register(m *Manager) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[m.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSession, m.ID())
	}
	r.sessions[m.ID()] = m
	return nil
}

// Get returns the manager for id, or false when none is registered.
func (r *Registry) Get(id string) (*Manager, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.sessions[id]
	return m, ok
}

// Remove unregisters and returns the manager for id, or false when none is
// registered.
func (r *Registry) Remove(id string) (*Manager, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	return m, ok
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// IDs returns the registered session ids in unspecified order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}
