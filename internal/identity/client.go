package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

// ProfileReader resolves the remote profile table. The REST client ships a
// default implementation; a postgres endpoint swaps in ProfileStore.
type ProfileReader interface {
	ProfileByID(ctx context.Context, id string) (models.Profile, error)
	InsertProfile(ctx context.Context, profile models.Profile) error
	DeleteProfile(ctx context.Context, id string) error
}

// Client talks to a password-grant identity endpoint. One client is shared
// process-wide; views subscribe through OnAuthChange instead of owning their
// own listeners.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     tokenStore
	profiles   ProfileReader

	mu        sync.Mutex
	session   *Session
	listeners map[int]func(AuthEvent, *Session)
	nextID    int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithProfileReader swaps the profile table backend.
func WithProfileReader(pr ProfileReader) Option {
	return func(c *Client) { c.profiles = pr }
}

// NewClient builds a client for the given endpoint base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     keyringStore{},
		listeners:  make(map[int]func(AuthEvent, *Session)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.profiles == nil {
		c.profiles = &restProfileReader{client: c}
	}
	return c
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Metadata struct {
			FullName string `json:"full_name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// CurrentSession returns the active session, refreshing it from the stored
// refresh token when needed. A signed-out state returns (nil, nil).
func (c *Client) CurrentSession(ctx context.Context) (*Session, error) {
	c.mu.Lock()
	if c.session != nil && !c.session.Expired(time.Now()) {
		session := *c.session
		c.mu.Unlock()
		return &session, nil
	}
	c.mu.Unlock()

	token, err := c.tokens.Get()
	if err != nil {
		if err == ErrTokenNotFound {
			return nil, nil
		}
		logger.Warn("could not read refresh token", "error", err)
		return nil, nil
	}

	session, err := c.grant(ctx, "refresh_token", map[string]string{"refresh_token": token})
	if err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}
	c.adopt(session, EventSignedIn)
	return session, nil
}

// SignInWithPassword exchanges credentials for a session and notifies
// listeners of the sign-in.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	session, err := c.grant(ctx, "password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}
	c.adopt(session, EventSignedIn)
	return session, nil
}

// SignUpWithMetadata registers a new account carrying the full name as signup
// metadata, then signs it in.
func (c *Client) SignUpWithMetadata(ctx context.Context, email, password, fullName string) (*Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}
	var resp tokenResponse
	if err := c.post(ctx, "/signup", "", body, &resp); err != nil {
		return nil, fmt.Errorf("sign-up failed: %w", err)
	}
	session := c.sessionFrom(resp)
	c.adopt(session, EventSignedIn)
	return session, nil
}

// SignOut revokes the session remotely, clears the stored refresh token, and
// notifies listeners. The remote call is best-effort.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if session != nil {
		if err := c.post(ctx, "/logout", session.AccessToken, nil, nil); err != nil {
			logger.Warn("remote logout failed", "error", err)
		}
	}
	if err := c.tokens.Delete(); err != nil {
		logger.Warn("could not clear stored refresh token", "error", err)
	}
	c.adopt(nil, EventSignedOut)
	return nil
}

// OnAuthChange registers a session-change listener and returns its
// unsubscribe function.
func (c *Client) OnAuthChange(fn func(AuthEvent, *Session)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// ProfileByID resolves a profile row through the configured backend.
func (c *Client) ProfileByID(ctx context.Context, id string) (models.Profile, error) {
	return c.profiles.ProfileByID(ctx, id)
}

// InsertProfile creates a profile row through the configured backend.
func (c *Client) InsertProfile(ctx context.Context, profile models.Profile) error {
	return c.profiles.InsertProfile(ctx, profile)
}

// DeleteProfile removes a profile row through the configured backend.
func (c *Client) DeleteProfile(ctx context.Context, id string) error {
	return c.profiles.DeleteProfile(ctx, id)
}

// DeleteUser removes the remote account itself. Requires an active session.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if session == nil {
		return ErrNotAuthenticated
	}
	if err := c.request(ctx, http.MethodDelete, "/admin/users/"+id, session.AccessToken, nil, nil); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (c *Client) grant(ctx context.Context, grantType string, body map[string]string) (*Session, error) {
	var resp tokenResponse
	if err := c.post(ctx, "/token?grant_type="+grantType, "", body, &resp); err != nil {
		return nil, err
	}
	return c.sessionFrom(resp), nil
}

// sessionFrom builds a Session, preferring the access token claims for
// identity fields over the response envelope.
func (c *Client) sessionFrom(resp tokenResponse) *Session {
	session := &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
		FullName:     resp.User.Metadata.FullName,
	}
	if resp.ExpiresIn > 0 {
		session.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	// Tokens are issued by the remote endpoint; claims are decoded without
	// signature verification since no shared secret exists client-side.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err == nil {
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			session.UserID = sub
		}
		if email, ok := claims["email"].(string); ok && email != "" {
			session.Email = email
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			session.ExpiresAt = exp.Time
		}
	}
	return session
}

// adopt installs the session, persists its refresh token, and fans the event
// out to listeners.
func (c *Client) adopt(session *Session, event AuthEvent) {
	if session != nil && session.RefreshToken != "" {
		if err := c.tokens.Set(session.RefreshToken); err != nil {
			logger.Warn("could not store refresh token", "error", err)
		}
	}

	c.mu.Lock()
	c.session = session
	fns := make([]func(AuthEvent, *Session), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(event, session)
	}
}

func (c *Client) post(ctx context.Context, path, bearer string, body, out any) error {
	return c.request(ctx, http.MethodPost, path, bearer, body, out)
}

func (c *Client) request(ctx context.Context, method, path, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("identity endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// restProfileReader reads the profile table through the identity endpoint.
type restProfileReader struct {
	client *Client
}

func (r *restProfileReader) ProfileByID(ctx context.Context, id string) (models.Profile, error) {
	r.client.mu.Lock()
	session := r.client.session
	r.client.mu.Unlock()
	bearer := ""
	if session != nil {
		bearer = session.AccessToken
	}

	var profile models.Profile
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.client.baseURL+"/profiles/"+id, nil)
	if err != nil {
		return profile, fmt.Errorf("failed to build request: %w", err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := r.client.httpClient.Do(req)
	if err != nil {
		return profile, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return profile, ErrProfileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return profile, fmt.Errorf("profile fetch returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return profile, fmt.Errorf("failed to decode profile: %w", err)
	}
	return profile, nil
}

func (r *restProfileReader) InsertProfile(ctx context.Context, profile models.Profile) error {
	r.client.mu.Lock()
	session := r.client.session
	r.client.mu.Unlock()
	bearer := ""
	if session != nil {
		bearer = session.AccessToken
	}
	return r.client.post(ctx, "/profiles", bearer, profile, nil)
}

func (r *restProfileReader) DeleteProfile(ctx context.Context, id string) error {
	r.client.mu.Lock()
	session := r.client.session
	r.client.mu.Unlock()
	bearer := ""
	if session != nil {
		bearer = session.AccessToken
	}
	return r.client.request(ctx, http.MethodDelete, "/profiles/"+id, bearer, nil, nil)
}
