// Package session implements the simulated auth gate and the in-memory
// session registry. A session owns its own feed store and upload draft;
// when the session expires or the process restarts, both are gone.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/bluele/gcache"
	"github.com/golang-jwt/jwt/v5"
	"github.com/segmentio/ksuid"

	"clipfeed/feed"
)

var (
	// ErrMissingFields is returned when a required auth field is empty.
	// Surfaced to the user as an inline "fill all fields" message.
	ErrMissingFields = errors.New("please fill all fields")

	// ErrSessionNotFound is returned when a token references a session
	// that expired or was evicted. The client must authenticate again.
	ErrSessionNotFound = errors.New("session not found")
)

// Session is one authenticated browser session and all state scoped to it.
type Session struct {
	ID          string
	Identifier  string
	DisplayName string
	CreatedAt   time.Time

	Feed  *feed.Store
	Draft *feed.Draft
}

// Handle is what a successful authentication returns to the client.
type Handle struct {
	Token       string `json:"token"`
	SessionID   string `json:"session_id"`
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name,omitempty"`
}

// Gate authenticates identifiers and keeps live sessions. The check is
// explicitly simulated: any non-empty identifier/secret pair is accepted.
// This is never a security boundary.
type Gate struct {
	sessions  gcache.Cache
	ttl       time.Duration
	jwtSecret string
}

// NewGate builds a gate keeping at most size sessions, each expiring after
// ttl of existence.
func NewGate(jwtSecret string, ttl time.Duration, size int) *Gate {
	return &Gate{
		sessions:  gcache.New(size).LRU().Build(),
		ttl:       ttl,
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates that the required fields are non-empty, creates a
// fresh session with its own empty feed and draft, and returns a handle
// carrying a signed token. displayName is required only when registering.
func (g *Gate) Authenticate(identifier, secret, displayName string, register bool) (*Handle, error) {
	if identifier == "" || secret == "" {
		return nil, ErrMissingFields
	}
	if register && displayName == "" {
		return nil, ErrMissingFields
	}

	id, err := ksuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	sess := &Session{
		ID:          id.String(),
		Identifier:  identifier,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
		Feed:        feed.NewStore(),
		Draft:       feed.NewDraft(),
	}
	if err := g.sessions.SetWithExpire(sess.ID, sess, g.ttl); err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}

	token, err := g.signToken(sess.ID)
	if err != nil {
		return nil, err
	}

	return &Handle{
		Token:       token,
		SessionID:   sess.ID,
		Identifier:  identifier,
		DisplayName: displayName,
	}, nil
}

// Lookup returns the live session for id.
func (g *Gate) Lookup(id string) (*Session, error) {
	v, err := g.sessions.Get(id)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	sess, ok := v.(*Session)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// signToken creates a JWT whose subject is the session id.
func (g *Gate) signToken(sessionID string) (string, error) {
	if g.jwtSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iss": "clipfeed-api",
		"aud": "clipfeed-client",
		"exp": now.Add(g.ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(g.jwtSecret))
}
