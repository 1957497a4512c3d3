// internal/store/memory.go
//
// In-memory session store for games served over HTTP.
//
// Characteristics:
//   - Stores *Session values keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Update runs its callback under the write
//     lock, so a game is only ever mutated by one goroutine at a time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/memory/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Session is one game being played through the API.
type Session struct {
	ID        string
	Game      *game.Game
	DailyDate string    // set for daily deals
	Deal      int       // bumped on every reset
	StartedAt time.Time // start of the current deal
	Recorded  bool      // current deal's win has been stored
}

// NewSession wraps g with a fresh ID.
func NewSession(g *game.Game, dailyDate string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Game:      g,
		DailyDate: dailyDate,
		StartedAt: time.Now(),
	}
}

// DealID identifies the current deal of the session.
func (s *Session) DealID() string { return fmt.Sprintf("%s/%d", s.ID, s.Deal) }

// Reset deals again and starts a new deal. A daily deck is only dealt once
// per session; later deals are free play and shuffled from a fresh source,
// not from the shared daily seed.
func (s *Session) Reset() {
	if s.DailyDate != "" {
		s.Game.Reseed(nil)
	}
	s.Game.Reset()
	s.DailyDate = ""
	s.Deal++
	s.StartedAt = time.Now()
	s.Recorded = false
}

// Store defines the persistence interface for sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*Session, error)

	// Update calls fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*Session) error) error

	// Delete removes a session; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions whose deal started before cutoff and reports how
	// many were removed.
	Sweep(ctx context.Context, cutoff time.Time) int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return errors.New("session without id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get returns the stored session. Callers that mutate the game must go
// through Update instead.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.StartedAt.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
