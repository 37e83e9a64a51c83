// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quizdesk/models"
)

// Registry keeps active sessions in memory, keyed by an opaque id.
// Sessions idle for longer than the TTL are dropped on the next access.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	mu       sync.Mutex
	session  *Session
	lastUsed time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func newID() string {
	return uuid.NewString()
}

func (r *Registry) add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)
	r.sessions[s.ID] = &entry{session: s, lastUsed: now}
}

// Do runs fn with exclusive access to the session owned by userID. Unknown,
// expired and foreign sessions all report models.ErrSessionNotFound.
func (r *Registry) Do(id string, userID int64, fn func(*Session) error) error {
	e, err := r.lookup(id, userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Remove discards a session. Returns models.ErrSessionNotFound when there is
// nothing to discard.
func (r *Registry) Remove(id string, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok || e.session.UserID != userID {
		return models.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(r.now())
	return len(r.sessions)
}

func (r *Registry) lookup(id string, userID int64) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)

	e, ok := r.sessions[id]
	if !ok || e.session.UserID != userID {
		return nil, models.ErrSessionNotFound
	}
	e.lastUsed = now
	return e, nil
}

func (r *Registry) pruneLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, e := range r.sessions {
		if now.Sub(e.lastUsed) > r.ttl {
			delete(r.sessions, id)
			slog.Debug("session expired", "session_id", id, "user_id", e.session.UserID)
		}
	}
}
