package output

import "stocksentry/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for managing per-session aggregation
// state. Implementations must be safe for concurrent access across session
// ids; serialization within one session id is the caller's job via the
// session's own mutex.
type SessionStore interface {
	// GetOrCreate returns the session for the given id, creating a
	// zero-valued one on first sight. A session idle beyond the store's TTL
	// is replaced by a fresh one (lazy eviction).
	// Returns an error only if there is a storage access failure.
	GetOrCreate(sessionID string) (*domain.Session, error)

	// DeleteSession removes a session by id.
	// This operation is idempotent - deleting a non-existent session does
	// not return an error.
	DeleteSession(sessionID string) error
}
