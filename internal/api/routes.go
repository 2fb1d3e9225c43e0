package api

import (
	"github.com/LerianStudio/mini-ledger/internal/ledger"
	"github.com/LerianStudio/mini-ledger/pkg/log"
	libHTTP "github.com/LerianStudio/mini-ledger/pkg/net/http"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber application with middleware and all ledger routes.
func NewApp(service *ledger.Service, logger log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mini-ledger",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(libHTTP.WithCORS())
	app.Use(libHTTP.WithLogging(logger))

	app.Get("/", libHTTP.Welcome("mini-ledger", "in-memory banking ledger service"))
	app.Get("/ping", libHTTP.Ping)
	app.Get("/health", libHTTP.Health)
	app.Get("/version", libHTTP.Version)

	handler := NewHandler(service)

	v1 := app.Group("/v1")
	v1.Post("/users", handler.CreateUser)
	v1.Get("/users", handler.ListUsers)
	v1.Post("/users/:user_id/transactions", handler.ApplyTransaction)
	v1.Post("/users/:user_id/loans", handler.IssueLoan)
	v1.Get("/users/:user_id/balance", handler.GetBalance)
	v1.Get("/loans", handler.ListLoans)

	return app
}
