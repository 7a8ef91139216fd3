// Package feed holds the session-scoped feed state: the post collection,
// the per-session like guard, the upload draft, and the favorites view.
package feed

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"clipfeed/media"
)

var (
	// ErrPostNotFound is returned when an operation targets an id that is
	// not in the feed. The UI only ever passes ids obtained from All, so
	// hitting this indicates a caller bug rather than a user-facing error.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidCandidate is returned when AddPost receives an incomplete
	// candidate. Draft gating is supposed to make this unreachable.
	ErrInvalidCandidate = errors.New("post candidate is missing required fields")
)

// Post is a submitted feed entry. ID is assigned at creation and never
// changes; Name, Location, MediaRef and MediaKind are immutable after that.
type Post struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	MediaRef  string     `json:"media_ref"`
	MediaKind media.Kind `json:"media_kind"`
	LikeCount int        `json:"like_count"`
	Favorite  bool       `json:"favorite"`
	CreatedAt time.Time  `json:"created_at"`
}

// Candidate is the payload a valid draft submits.
type Candidate struct {
	Name      string
	Location  string
	MediaRef  string
	MediaKind media.Kind
}

// Store is the single source of truth for one session's posts and its like
// guard. Posts keep insertion order; there is no edit, delete or reorder.
type Store struct {
	mu    sync.Mutex
	posts []*Post
	liked map[string]struct{}
}

func NewStore() *Store {
	return &Store{liked: make(map[string]struct{})}
}

// AddPost appends a new post built from the candidate. The new post starts
// with zero likes and is not a favorite.
func (s *Store) AddPost(c Candidate) (Post, error) {
	if c.Name == "" || c.Location == "" || c.MediaRef == "" || c.MediaKind == "" {
		return Post{}, ErrInvalidCandidate
	}

	id, err := ksuid.NewRandom()
	if err != nil {
		return Post{}, fmt.Errorf("generate post id: %w", err)
	}

	post := &Post{
		ID:        id.String(),
		Name:      c.Name,
		Location:  c.Location,
		MediaRef:  c.MediaRef,
		MediaKind: c.MediaKind,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.posts = append(s.posts, post)
	s.mu.Unlock()

	return *post, nil
}

// Like increments the post's like count unless this session already liked
// it, in which case the call is silently ignored. The guard check and the
// increment happen under one lock so two racing likes can never both count.
func (s *Store) Like(postID string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(postID)
	if p == nil {
		return Post{}, ErrPostNotFound
	}
	if _, already := s.liked[postID]; already {
		return *p, nil
	}
	p.LikeCount++
	s.liked[postID] = struct{}{}
	return *p, nil
}

// ToggleFavorite flips the post's favorite flag. There is no per-session
// restriction; toggles are always honored.
func (s *Store) ToggleFavorite(postID string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(postID)
	if p == nil {
		return Post{}, ErrPostNotFound
	}
	p.Favorite = !p.Favorite
	return *p, nil
}

// All returns the posts in insertion order. The returned slice holds copies;
// mutating it does not touch the store.
func (s *Store) All() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = *p
	}
	return out
}

func (s *Store) find(postID string) *Post {
	for _, p := range s.posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}
