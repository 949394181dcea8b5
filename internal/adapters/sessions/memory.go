package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
)

type session struct {
	userID    int64
	expiresAt time.Time
}

// MemoryRegistry keeps sessions in a process-local map.
type MemoryRegistry struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]session
	opts     options
}

var _ portssvc.SessionRegistry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates an empty registry. A non-positive ttl means DefaultTTL.
func NewMemoryRegistry(ttl time.Duration, opts ...Option) *MemoryRegistry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryRegistry{
		ttl:      ttl,
		sessions: make(map[string]session),
		opts:     buildOptions(opts),
	}
}

func (r *MemoryRegistry) Issue(_ context.Context, userID int64) (string, error) {
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		token, err := r.opts.newToken()
		if err != nil {
			return "", err
		}

		r.mu.Lock()
		now := r.opts.now()
		if existing, taken := r.sessions[token]; taken && existing.expiresAt.After(now) {
			r.mu.Unlock()
			continue
		}
		r.sessions[token] = session{userID: userID, expiresAt: now.Add(r.ttl)}
		r.mu.Unlock()
		return token, nil
	}
	return "", ErrTokenExhausted
}

func (r *MemoryRegistry) Resolve(_ context.Context, token string) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return 0, false, nil
	}
	if !s.expiresAt.After(r.opts.now()) {
		delete(r.sessions, token)
		return 0, false, nil
	}
	return s.userID, true, nil
}

func (r *MemoryRegistry) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions, expired ones included until purged.
func (r *MemoryRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep purges every expired session and returns how many were removed.
func (r *MemoryRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.opts.now()
	removed := 0
	for token, s := range r.sessions {
		if !s.expiresAt.After(now) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is cancelled.
func (r *MemoryRegistry) StartSweeper(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					logger.Debug("Purged expired sessions", slog.Int("count", n))
				}
			}
		}
	}()
}
