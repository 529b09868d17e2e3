package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// EnsureRequestID tags every request with an id, taken from the X-Request-ID
// header or generated. The id is stored in Locals("requestID") and echoed back.
func EnsureRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Check if requestID is already set
		if c.Locals("requestID") != nil {
			return c.Next()
		}

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals("requestID", requestID)
		c.Set(RequestIDHeader, requestID)
		log.Debug().Str("requestID", requestID).Str("method", c.Method()).Str("path", c.Path()).Msg("request")
		return c.Next()
	}
}

// RequestID returns the id EnsureRequestID stored for this request.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestID").(string)
	return id
}
