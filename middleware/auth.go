// Package middleware provides authentication, logging and rate limiting
// middleware for the application.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"clipfeed/config"
	"clipfeed/models"
	"clipfeed/session"
)

var (
	cfg  *config.Config
	gate *session.Gate
)

// InitMiddleware initializes authentication middleware with the given
// config and session gate.
func InitMiddleware(c *config.Config, g *session.Gate) {
	cfg = c
	gate = g
}

// AuthRequired enforces a valid bearer token on protected routes and loads
// the referenced session into c.Locals("session"). A token whose session
// expired or was evicted is rejected; the client has to authenticate again.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization header required"))
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid authorization header format"))
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid or expired token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid token claims"))
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid token structure - missing subject"))
	}

	sess, err := gate.Lookup(sub)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Session expired, please log in again"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	c.Locals("session", sess)
	return c.Next()
}

// CurrentSession returns the session loaded by AuthRequired.
func CurrentSession(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals("session").(*session.Session)
	return sess
}
