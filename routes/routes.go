package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"clipfeed/cache"
	"clipfeed/handlers"
	"clipfeed/middleware"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "clipfeed up",
			"version": "1.0.0",
		})
	})

	// Auth routes (rate limited; they mint sessions)
	auth := api.Group("/auth", middleware.RateLimit(cache.Client, 20, time.Minute, "auth"))
	auth.Post("/login", handlers.Login)
	auth.Post("/signup", handlers.Signup)

	// Media blobs are addressed by unguessable ids
	api.Get("/media/:id", handlers.ServeMedia)

	// Feed routes, all scoped to the caller's session
	feed := api.Group("/feed", middleware.AuthRequired)
	feed.Get("/", handlers.GetFeed)
	feed.Get("/favorites", handlers.GetFavorites)
	feed.Post("/favorites/:id/like", handlers.LikeFavorite)
	feed.Post("/favorites/:id/favorite", handlers.UnfavoriteFromView)
	feed.Post("/:id/like", handlers.LikePost)
	feed.Post("/:id/favorite", handlers.FavoritePost)

	// Upload draft routes
	draft := api.Group("/draft", middleware.AuthRequired)
	draft.Get("/", handlers.GetDraft)
	draft.Put("/fields", handlers.UpdateDraftFields)
	draft.Post("/file", middleware.RateLimit(cache.Client, 30, time.Minute, "upload"), handlers.SelectDraftFile)
	draft.Post("/drop", middleware.RateLimit(cache.Client, 30, time.Minute, "upload"), handlers.DropDraftFile)
	draft.Put("/drag", handlers.SetDragState)
	draft.Post("/submit", handlers.SubmitDraft)
	draft.Delete("/", handlers.CancelDraft)
}
