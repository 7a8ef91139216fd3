package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"clipfeed/session"
)

// RequestLogger returns a Fiber middleware logging every request with
// structured fields.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := log.Fields{
			"status":  c.Response().StatusCode(),
			"method":  c.Method(),
			"path":    c.Path(),
			"ip":      c.IP(),
			"latency": time.Since(start).String(),
		}
		if sess, ok := c.Locals("session").(*session.Session); ok && sess != nil {
			fields["session_id"] = sess.ID
		}

		if err != nil {
			log.WithFields(fields).WithError(err).Error("request failed")
		} else {
			log.WithFields(fields).Info("request processed")
		}

		return err
	}
}
