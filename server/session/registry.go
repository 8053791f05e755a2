package session

import (
	"context"
	"sync"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

// ErrTurnInProgress indicates a new turn was attempted while the previous
// stream had not yet terminated.
var ErrTurnInProgress = errors.New("a chat turn is already in progress")

// Session couples a state with its ID and the single-flight turn guard.
type Session struct {
	ID    string
	State *State

	turn *semaphore.Weighted
}

// BeginTurn acquires the turn guard without blocking. The caller must call
// EndTurn once the stream has terminated.
func (s *Session) BeginTurn() error {
	if !s.turn.TryAcquire(1) {
		return ErrTurnInProgress
	}
	return nil
}

// EndTurn releases the turn guard.
func (s *Session) EndTurn() {
	s.turn.Release(1)
}

// WaitTurn blocks until the turn guard is free or the context is done.
func (s *Session) WaitTurn(ctx context.Context) error {
	return s.turn.Acquire(ctx, 1)
}

// Registry is the in-memory session registry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create mints a new session.
func (r *Registry) Create() *Session {
	session := &Session{
		ID:    shortuuid.New(),
		State: NewState(),
		turn:  semaphore.NewWeighted(1),
	}
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

// Get returns the session with the given ID, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Delete removes a session from the registry.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
