package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"campaign-editor/internal/core/port"
	"campaign-editor/internal/metrics"
)

var (
	// ErrSessionNotFound is returned for unknown or evicted sessions.
	ErrSessionNotFound = errors.New("editor session not found")
	// ErrTooManySessions is returned when the registry is full.
	ErrTooManySessions = errors.New("too many open editor sessions")
)

// Registry holds the editor sessions owned by HTTP clients. Sessions left
// untouched for longer than the TTL are discarded, unsaved edits included.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	ttl      time.Duration
	max      int
	now      func() time.Time
	logger   *slog.Logger
}

type registryEntry struct {
	session port.EditorSession
	touched time.Time
}

// NewRegistry creates a registry. A zero ttl keeps sessions until they are
// deleted and a zero max disables the size cap.
func NewRegistry(ttl time.Duration, maxSessions int, logger *slog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*registryEntry),
		ttl:      ttl,
		max:      maxSessions,
		now:      time.Now,
		logger:   logger,
	}
}

// Put registers s under its id.
func (r *Registry) Put(s port.EditorSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.max > 0 && len(r.sessions) >= r.max {
		r.sweepLocked()
		if len(r.sessions) >= r.max {
			return ErrTooManySessions
		}
	}
	r.sessions[s.ID()] = &registryEntry{session: s, touched: r.now()}
	metrics.OpenSessions.Set(float64(len(r.sessions)))
	return nil
}

// Get returns the session and marks it as used.
func (r *Registry) Get(id string) (port.EditorSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok || r.expiredLocked(e) {
		return nil, ErrSessionNotFound
	}
	e.touched = r.now()
	return e.session, nil
}

// Delete discards the session. Deleting an unknown id is not an error.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	metrics.OpenSessions.Set(float64(len(r.sessions)))
}

// Len returns the number of registered sessions, expired ones included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep discards expired sessions and returns how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked()
}

// Run sweeps the registry every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("idle editor sessions evicted", slog.Int("count", n))
			}
		}
	}
}

func (r *Registry) sweepLocked() int {
	n := 0
	for id, e := range r.sessions {
		if r.expiredLocked(e) {
			delete(r.sessions, id)
			n++
		}
	}
	metrics.OpenSessions.Set(float64(len(r.sessions)))
	return n
}

func (r *Registry) expiredLocked(e *registryEntry) bool {
	return r.ttl > 0 && r.now().Sub(e.touched) > r.ttl
}
