package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipfeed/feed"
	"clipfeed/media"
)

const testSecret = "test-secret-key"

func newTestGate() *Gate {
	return NewGate(testSecret, time.Hour, 16)
}

func TestAuthenticate_RequiresNonEmptyFields(t *testing.T) {
	g := newTestGate()

	tests := []struct {
		name       string
		identifier string
		secret     string
		display    string
		register   bool
		wantErr    bool
	}{
		{"login ok", "user@example.com", "pw", "", false, false},
		{"login missing identifier", "", "pw", "", false, true},
		{"login missing secret", "user@example.com", "", "", false, true},
		{"signup ok", "user@example.com", "pw", "Reader1", true, false},
		{"signup missing display name", "user@example.com", "pw", "", true, true},
		// Any non-empty pair passes; there is no real credential check
		{"arbitrary credentials accepted", "whoever", "whatever", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle, err := g.Authenticate(tt.identifier, tt.secret, tt.display, tt.register)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingFields)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, handle.Token)
			assert.NotEmpty(t, handle.SessionID)
		})
	}
}

func TestAuthenticate_SessionsAreIndependent(t *testing.T) {
	g := newTestGate()

	h1, err := g.Authenticate("a@example.com", "pw", "", false)
	require.NoError(t, err)
	h2, err := g.Authenticate("b@example.com", "pw", "", false)
	require.NoError(t, err)
	assert.NotEqual(t, h1.SessionID, h2.SessionID)

	s1, err := g.Lookup(h1.SessionID)
	require.NoError(t, err)
	s2, err := g.Lookup(h2.SessionID)
	require.NoError(t, err)

	post, err := s1.Feed.AddPost(feed.Candidate{
		Name: "Reader1", Location: "Cairo",
		MediaRef: "/api/media/x", MediaKind: media.KindAudio,
	})
	require.NoError(t, err)
	_, err = s1.Feed.Like(post.ID)
	require.NoError(t, err)

	// The other session's feed never sees any of it
	assert.Empty(t, s2.Feed.All())
	_, err = s2.Feed.Like(post.ID)
	assert.ErrorIs(t, err, feed.ErrPostNotFound)
}

func TestAuthenticate_FreshSessionState(t *testing.T) {
	g := newTestGate()

	h, err := g.Authenticate("user@example.com", "pw", "Reader1", true)
	require.NoError(t, err)

	sess, err := g.Lookup(h.SessionID)
	require.NoError(t, err)

	assert.Empty(t, sess.Feed.All())
	assert.Equal(t, feed.DraftEmpty, sess.Draft.View().State)
	assert.Equal(t, "Reader1", sess.DisplayName)
}

func TestLookup_UnknownSession(t *testing.T) {
	g := newTestGate()

	_, err := g.Lookup("never-issued")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLookup_ExpiredSession(t *testing.T) {
	g := NewGate(testSecret, 10*time.Millisecond, 16)

	h, err := g.Authenticate("user@example.com", "pw", "", false)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = g.Lookup(h.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestToken_CarriesSessionSubject(t *testing.T) {
	g := newTestGate()

	h, err := g.Authenticate("user@example.com", "pw", "", false)
	require.NoError(t, err)

	token, err := jwt.Parse(h.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, h.SessionID, claims["sub"])
	assert.Equal(t, "clipfeed-api", claims["iss"])
}
