// internal/session/store.go
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

// Store holds live sessions. The core services mutate a Session without any
// locking of their own, so the store is the single place that serializes
// access: Do takes the per-session lock for the whole operation, giving each
// session exactly one writer at a time.
type Store interface {
	Create(ctx context.Context, s *model.Session) error
	// Do runs fn while holding the lock for the given session. Returns
	// model.ErrSessionNotFound for unknown ids; fn's error is passed through.
	Do(ctx context.Context, sessionID uuid.UUID, fn func(s *model.Session) error) error
}

type entry struct {
	mu   sync.Mutex
	sess *model.Session
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
}

// NewMemoryStore returns the in-process Store. Sessions live only as long as
// the process; durability was deliberately left out.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[uuid.UUID]*entry)}
}

func (st *memoryStore) Create(ctx context.Context, s *model.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, exists := st.entries[s.SessionID]; exists {
		return model.ErrConflict
	}
	st.entries[s.SessionID] = &entry{sess: s}
	return nil
}

func (st *memoryStore) Do(ctx context.Context, sessionID uuid.UUID, fn func(s *model.Session) error) error {
	st.mu.RLock()
	e, ok := st.entries[sessionID]
	st.mu.RUnlock()
	if !ok {
		return model.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sess)
}
