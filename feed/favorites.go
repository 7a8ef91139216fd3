package feed

// Favorites returns the posts currently marked favorite, preserving the
// feed's insertion order. An empty feed yields an empty result.
func Favorites(posts []Post) []Post {
	out := make([]Post, 0)
	for _, p := range posts {
		if p.Favorite {
			out = append(out, p)
		}
	}
	return out
}

// Projection is the favorites view over a store. It owns no state of its
// own: reads derive from the store and actions are routed back to it by
// stable post id, never by position in the filtered slice.
type Projection struct {
	store *Store
}

func NewProjection(s *Store) *Projection {
	return &Projection{store: s}
}

// View returns the favorited subsequence of the store's feed.
func (p *Projection) View() []Post {
	return Favorites(p.store.All())
}

// Like delegates a like from the favorites view to the owning store.
func (p *Projection) Like(postID string) (Post, error) {
	return p.store.Like(postID)
}

// ToggleFavorite delegates a favorite toggle to the owning store. Toggling
// off removes the post from subsequent View results.
func (p *Projection) ToggleFavorite(postID string) (Post, error) {
	return p.store.ToggleFavorite(postID)
}
