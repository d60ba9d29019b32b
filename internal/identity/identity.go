package identity

import (
	"context"
	"errors"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

// AuthEvent names a session lifecycle change broadcast to listeners.
type AuthEvent string

const (
	EventSignedIn  AuthEvent = "SIGNED_IN"
	EventSignedOut AuthEvent = "SIGNED_OUT"
)

var (
	// ErrNotAuthenticated is returned by operations that require a session
	// when none exists.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrProfileNotFound is returned when no profile row exists for an id.
	ErrProfileNotFound = errors.New("profile not found")
)

// Session is the decoded view of an access grant from the identity endpoint.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	FullName     string
	ExpiresAt    time.Time
}

// Expired reports whether the access token is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Provider is the identity endpoint boundary. CurrentSession returns
// (nil, nil) when signed out; that is not an error.
type Provider interface {
	CurrentSession(ctx context.Context) (*Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignUpWithMetadata(ctx context.Context, email, password, fullName string) (*Session, error)
	SignOut(ctx context.Context) error
	OnAuthChange(fn func(AuthEvent, *Session)) (unsubscribe func())
	ProfileByID(ctx context.Context, id string) (models.Profile, error)
	InsertProfile(ctx context.Context, profile models.Profile) error
	DeleteProfile(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}
