package http

import (
	"time"

	"github.com/LerianStudio/mini-ledger/pkg/env"
	"github.com/gofiber/fiber/v2"
)

// Ping returns HTTP Status 200 with response "pong".
func Ping(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// Health returns HTTP Status 200 while the process is able to serve requests.
// The service holds all state in memory, so there are no dependencies to probe.
func Health(c *fiber.Ctx) error {
	return OK(c, fiber.Map{"status": "available"})
}

// Version returns HTTP Status 200 with the configured service version.
func Version(c *fiber.Ctx) error {
	return OK(c, fiber.Map{
		"version":     env.GetenvOrDefault("VERSION", "0.0.0"),
		"requestDate": time.Now().UTC(),
	})
}

// Welcome returns HTTP Status 200 with service info.
func Welcome(service string, description string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":     service,
			"description": description,
		})
	}
}
