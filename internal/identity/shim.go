package identity

import (
	"context"
	"sync"

	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

// Shim mirrors the signed-in user as a read-only local identity. It never
// mutates the remote account; it only reflects session changes pushed by the
// provider.
type Shim struct {
	provider Provider

	mu          sync.RWMutex
	identity    *models.Identity
	unsubscribe func()
}

func NewShim(provider Provider) *Shim {
	return &Shim{provider: provider}
}

// Attach fetches the current session, populates the mirror, and subscribes to
// session changes for the shim's lifetime.
func (s *Shim) Attach(ctx context.Context) error {
	session, err := s.provider.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if session != nil {
		s.populate(ctx, session)
	}

	s.unsubscribe = s.provider.OnAuthChange(func(event AuthEvent, session *Session) {
		switch event {
		case EventSignedIn:
			s.populate(context.Background(), session)
		case EventSignedOut:
			s.clear()
		}
	})
	return nil
}

// Identity returns the mirrored user, reporting whether anyone is signed in.
func (s *Shim) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

// Close unsubscribes from session changes and clears the mirror.
func (s *Shim) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.clear()
}

// populate fills the mirror from a session, preferring the profile-table name
// over the signup metadata name. A failed profile fetch is logged and falls
// back silently.
func (s *Shim) populate(ctx context.Context, session *Session) {
	if session == nil {
		s.clear()
		return
	}

	name := session.FullName
	if profile, err := s.provider.ProfileByID(ctx, session.UserID); err != nil {
		logger.Debug("profile fetch failed, using metadata name", "error", err)
	} else if profile.FullName != "" {
		name = profile.FullName
	}

	s.mu.Lock()
	s.identity = &models.Identity{
		ID:       session.UserID,
		Email:    session.Email,
		FullName: name,
	}
	s.mu.Unlock()
}

func (s *Shim) clear() {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
}
