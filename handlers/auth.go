// Package handlers contains the HTTP handlers for the feed API.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clipfeed/media"
	"clipfeed/models"
	"clipfeed/session"
)

var (
	gate     *session.Gate
	provider *media.BlobProvider
)

// Init wires the handlers to the session gate and media provider.
func Init(g *session.Gate, p *media.BlobProvider) {
	gate = g
	provider = p
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Login handles POST /api/auth/login. The credential check is simulated:
// any non-empty email/password pair yields a fresh session.
func Login(c *fiber.Ctx) error {
	req := new(LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	handle, err := gate.Authenticate(req.Email, req.Password, "", false)
	if err != nil {
		return respondAuthError(c, err)
	}

	return c.JSON(handle)
}

// Signup handles POST /api/auth/signup. Like login it performs no real
// verification, but additionally requires a display name.
func Signup(c *fiber.Ctx) error {
	req := new(SignupRequest)
	if err := c.BodyParser(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	handle, err := gate.Authenticate(req.Email, req.Password, req.Name, true)
	if err != nil {
		return respondAuthError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(handle)
}

func respondAuthError(c *fiber.Ctx, err error) error {
	if errors.Is(err, session.ErrMissingFields) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please fill all fields."))
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
