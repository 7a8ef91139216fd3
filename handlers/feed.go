package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clipfeed/feed"
	"clipfeed/middleware"
	"clipfeed/models"
)

// GetFeed handles GET /api/feed and returns the session's posts in
// insertion order.
func GetFeed(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(sess.Feed.All())
}

// LikePost handles POST /api/feed/:id/like. A repeat like from the same
// session is a no-op and still returns the post unchanged.
func LikePost(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	post, err := sess.Feed.Like(c.Params("id"))
	if err != nil {
		return respondFeedError(c, "post", c.Params("id"), err)
	}
	return c.JSON(post)
}

// FavoritePost handles POST /api/feed/:id/favorite and flips the post's
// favorite flag.
func FavoritePost(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	post, err := sess.Feed.ToggleFavorite(c.Params("id"))
	if err != nil {
		return respondFeedError(c, "post", c.Params("id"), err)
	}
	return c.JSON(post)
}

// GetFavorites handles GET /api/feed/favorites: the order-preserving
// subsequence of favorited posts.
func GetFavorites(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(feed.NewProjection(sess.Feed).View())
}

// LikeFavorite handles POST /api/feed/favorites/:id/like. Actions taken on
// the favorites view resolve back to the owning store by stable id.
func LikeFavorite(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	post, err := feed.NewProjection(sess.Feed).Like(c.Params("id"))
	if err != nil {
		return respondFeedError(c, "favorite", c.Params("id"), err)
	}
	return c.JSON(post)
}

// UnfavoriteFromView handles POST /api/feed/favorites/:id/favorite, the
// toggle issued from within the favorites view itself.
func UnfavoriteFromView(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	post, err := feed.NewProjection(sess.Feed).ToggleFavorite(c.Params("id"))
	if err != nil {
		return respondFeedError(c, "favorite", c.Params("id"), err)
	}
	return c.JSON(post)
}

func respondFeedError(c *fiber.Ctx, resource, id string, err error) error {
	if errors.Is(err, feed.ErrPostNotFound) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError(resource, id))
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
