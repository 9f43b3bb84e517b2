package calculator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned for unknown or deleted session IDs.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTooManySessions is returned when the registry is full.
	ErrTooManySessions = errors.New("too many sessions")
)

// Session is one calculator screen. Presses on a session are serialized
// by its own mutex; the store underneath is not safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu          sync.Mutex
	controller  *Controller
	display     string
	unsubscribe func()
	closed      bool
}

// Snapshot is a consistent view of a session.
type Snapshot struct {
	Display string
	State   State
}

// Press applies glyphs in order and stops at the first failing one. The
// returned snapshot reflects every glyph applied before the failure. A
// deleted session rejects every press with ErrSessionNotFound.
func (s *Session) Press(glyphs ...string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.snapshotLocked(), fmt.Errorf("%w: %s", ErrSessionNotFound, s.ID)
	}

	for _, g := range glyphs {
		if err := s.controller.Press(g); err != nil {
			return s.snapshotLocked(), err
		}
	}
	return s.snapshotLocked(), nil
}

// Snapshot returns the current display and state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{Display: s.display, State: s.controller.State()}
}

// render is subscribed to the session's store and keeps the display text
// current. It runs with s.mu held by Press.
func (s *Session) render(state State) {
	s.display = Display(state)
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.unsubscribe()
}

// Registry holds live sessions in memory.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
	now         func() time.Time
}

// NewRegistry returns a registry that holds at most maxSessions sessions.
// A non-positive maxSessions means no limit.
func NewRegistry(maxSessions int) *Registry {
	return &Registry{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Create starts a new session on a cleared screen.
func (r *Registry) Create() (*Session, error) {
	controller, err := NewController()
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:         uuid.New().String(),
		CreatedAt:  r.now(),
		controller: controller,
		display:    Display(controller.State()),
	}
	s.unsubscribe, err = controller.Subscribe(s.render)
	if err != nil {
		return nil, fmt.Errorf("subscribing renderer: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		s.unsubscribe()
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManySessions, r.maxSessions)
	}
	r.sessions[s.ID] = s

	return s, nil
}

// Get looks up a session by ID.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete removes a session and detaches its renderer.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.close()
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
