package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

// fakeProvider drives the shim without a network.
type fakeProvider struct {
	session    *Session
	profile    models.Profile
	profileErr error
	listeners  []func(AuthEvent, *Session)
}

func (f *fakeProvider) CurrentSession(context.Context) (*Session, error) {
	return f.session, nil
}

func (f *fakeProvider) SignInWithPassword(context.Context, string, string) (*Session, error) {
	return f.session, nil
}

func (f *fakeProvider) SignUpWithMetadata(context.Context, string, string, string) (*Session, error) {
	return f.session, nil
}

func (f *fakeProvider) SignOut(context.Context) error { return nil }

func (f *fakeProvider) OnAuthChange(fn func(AuthEvent, *Session)) func() {
	f.listeners = append(f.listeners, fn)
	return func() { f.listeners = nil }
}

func (f *fakeProvider) ProfileByID(context.Context, string) (models.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeProvider) InsertProfile(context.Context, models.Profile) error { return nil }
func (f *fakeProvider) DeleteProfile(context.Context, string) error         { return nil }
func (f *fakeProvider) DeleteUser(context.Context, string) error            { return nil }

func (f *fakeProvider) emit(event AuthEvent, session *Session) {
	for _, fn := range f.listeners {
		fn(event, session)
	}
}

func TestShimPrefersProfileName(t *testing.T) {
	p := &fakeProvider{
		session: &Session{UserID: "user-1", Email: "sam@example.com", FullName: "Sam Doe"},
		profile: models.Profile{ID: "user-1", FullName: "Samantha Doe"},
	}
	s := NewShim(p)
	if err := s.Attach(context.Background()); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	defer s.Close()

	identity, ok := s.Identity()
	if !ok {
		t.Fatal("no identity mirrored")
	}
	if identity.FullName != "Samantha Doe" {
		t.Errorf("full name = %q, want profile name", identity.FullName)
	}
	if identity.ID != "user-1" || identity.Email != "sam@example.com" {
		t.Errorf("identity = %+v", identity)
	}
}

func TestShimFallsBackToMetadataNameOnProfileFailure(t *testing.T) {
	p := &fakeProvider{
		session:    &Session{UserID: "user-1", Email: "sam@example.com", FullName: "Sam Doe"},
		profileErr: errors.New("network down"),
	}
	s := NewShim(p)
	if err := s.Attach(context.Background()); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	defer s.Close()

	identity, ok := s.Identity()
	if !ok || identity.FullName != "Sam Doe" {
		t.Errorf("identity = %+v, want metadata fallback", identity)
	}
}

func TestShimSignedOutState(t *testing.T) {
	p := &fakeProvider{}
	s := NewShim(p)
	if err := s.Attach(context.Background()); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	defer s.Close()

	if _, ok := s.Identity(); ok {
		t.Error("identity mirrored with no session")
	}
}

func TestShimFollowsAuthEvents(t *testing.T) {
	p := &fakeProvider{
		profile: models.Profile{ID: "user-1", FullName: "Samantha Doe"},
	}
	s := NewShim(p)
	if err := s.Attach(context.Background()); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	defer s.Close()

	p.emit(EventSignedIn, &Session{UserID: "user-1", Email: "sam@example.com"})
	if identity, ok := s.Identity(); !ok || identity.ID != "user-1" {
		t.Errorf("sign-in not mirrored: %+v", identity)
	}

	p.emit(EventSignedOut, nil)
	if _, ok := s.Identity(); ok {
		t.Error("sign-out not mirrored")
	}
}

func TestShimCloseUnsubscribes(t *testing.T) {
	p := &fakeProvider{}
	s := NewShim(p)
	if err := s.Attach(context.Background()); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	s.Close()
	if len(p.listeners) != 0 {
		t.Error("listener survived Close")
	}
}
