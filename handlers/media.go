package handlers

import (
	"github.com/gofiber/fiber/v2"

	"clipfeed/models"
)

// ServeMedia handles GET /api/media/:id and streams a stored blob with its
// original content type. Refs die with the process; a stale ref is a 404.
func ServeMedia(c *fiber.Ctx) error {
	id := c.Params("id")

	blob, ok := provider.Get(id)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("media", id))
	}

	c.Set(fiber.HeaderContentType, blob.ContentType)
	return c.Send(blob.Data)
}
