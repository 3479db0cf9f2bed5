package memory

import (
	"sync"
	"time"

	"stocksentry/internal/domain"
	"stocksentry/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory session storage.
// The map and each session's LastActivityTime are guarded by the store
// mutex; serialization of the remaining state inside one session is done by
// the session's own mutex, held by the caller. Sessions idle beyond the TTL
// are replaced lazily on GetOrCreate and can also be collected in bulk via
// Sweep.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
}

// NewMemorySessionStore creates a new in-memory session store.
// ttl: duration of inactivity after which a session's state is discarded
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
	}
}

// GetTTL returns the configured idle TTL.
func (m *MemorySessionStore) GetTTL() time.Duration {
	return m.ttl
}

// GetOrCreate returns the session for the given id, creating a zero-valued
// one on first sight. A session idle beyond the TTL is dropped and replaced
// by a fresh one (lazy cleanup). LastActivityTime is updated on every call.
// The whole lookup runs under the write lock: LastActivityTime is read by
// IsIdleSince and written here, so a read-locked fast path would let two
// requests for the same id race on it.
func (m *MemorySessionStore) GetOrCreate(sessionID string) (*domain.Session, error) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[sessionID]
	if exists && !session.IsIdleSince(now, m.ttl) {
		session.LastActivityTime = now
		return session, nil
	}

	session = domain.NewSession(sessionID)
	session.LastActivityTime = now
	m.sessions[sessionID] = session
	return session, nil
}

// DeleteSession removes a session by id.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// Sweep removes every session idle beyond the TTL and returns how many were
// dropped. Called periodically by the server so that sessions that never see
// another request don't accumulate forever.
func (m *MemorySessionStore) Sweep() int {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, session := range m.sessions {
		if session.IsIdleSince(now, m.ttl) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
