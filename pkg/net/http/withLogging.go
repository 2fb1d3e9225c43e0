package http

import (
	"time"

	"github.com/LerianStudio/mini-ledger/pkg/log"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// WithLogging is a middleware that logs one structured access line per request.
//
// Every request gets an X-Request-Id (propagated from the caller or generated
// here) so access logs can be correlated with application logs.
func WithLogging(logger log.Logger) fiber.Handler {
	if logger == nil {
		logger = log.NewNop()
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(fiber.HeaderXRequestID, requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		level := log.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = log.LevelError
		}

		logger.Log(c.UserContext(), level, "http request",
			log.String("request_id", requestID),
			log.String("method", c.Method()),
			log.String("path", c.Path()),
			log.Int("status", status),
			log.Int64("duration_ms", time.Since(start).Milliseconds()),
		)

		return err
	}
}
