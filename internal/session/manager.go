package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Manager owns the in-memory session table.
type Manager struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewManager creates a session manager with the given inactivity timeout.
func NewManager(timeout time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		logger:   logger.With().Str("component", "session_manager").Logger(),
	}
}

// Create generates a new session ID and stores the session.
func (m *Manager) Create(ctx context.Context, remoteAddr, userAgent string) (*Session, error) {
	id, err := generateID()
	if err != nil {
		m.logger.Error().
			Err(err).
			Str("remote_addr", remoteAddr).
			Msg("Failed to generate session ID")
		return nil, err
	}

	now := time.Now()
	session := &Session{
		ID:         id,
		CreatedAt:  now,
		LastAccess: now,
		ExpiresAt:  now.Add(m.timeout),
		RemoteAddr: remoteAddr,
		UserAgent:  userAgent,
	}

	m.mutex.Lock()
	m.sessions[id] = session
	m.mutex.Unlock()

	m.logger.Info().
		Str("session_id", id).
		Str("remote_addr", remoteAddr).
		Time("expires_at", session.ExpiresAt).
		Msg("Session created")

	return session, nil
}

// Validate checks that a session ID is well-formed, known, and not expired.
// Expired sessions are removed as a side effect.
func (m *Manager) Validate(ctx context.Context, id string) (*Session, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	m.mutex.RLock()
	session, exists := m.sessions[id]
	m.mutex.RUnlock()

	if !exists {
		return nil, newError(ErrNotFound, "session not found: %s", id)
	}

	if session.IsExpired() {
		m.mutex.Lock()
		delete(m.sessions, id)
		m.mutex.Unlock()

		m.logger.Debug().
			Str("session_id", id).
			Time("expires_at", session.ExpiresAt).
			Msg("Session has expired")
		return nil, newError(ErrExpired, "session expired: %s", id)
	}

	return session, nil
}

// Refresh updates the last access time and extends expiration.
func (m *Manager) Refresh(ctx context.Context, id string) error {
	session, err := m.Validate(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()

	m.mutex.Lock()
	session.LastAccess = now
	session.ExpiresAt = now.Add(m.timeout)
	m.mutex.Unlock()

	return nil
}

// Delete removes a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mutex.Lock()
	_, exists := m.sessions[id]
	delete(m.sessions, id)
	m.mutex.Unlock()

	if !exists {
		return newError(ErrNotFound, "session not found: %s", id)
	}

	m.logger.Info().
		Str("session_id", id).
		Msg("Session deleted")

	return nil
}

// Sweep removes all expired sessions and returns how many were deleted.
func (m *Manager) Sweep(ctx context.Context) int {
	now := time.Now()

	m.mutex.Lock()
	deleted := 0
	for id, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, id)
			deleted++
		}
	}
	m.mutex.Unlock()

	if deleted > 0 {
		m.logger.Info().
			Int("deleted_count", deleted).
			Msg("Expired sessions swept")
	}

	return deleted
}

// Count returns the number of stored sessions, expired ones included until
// the next sweep.
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}
