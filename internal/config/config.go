// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/LerianStudio/mini-ledger/pkg/env"
)

// Config holds all runtime configuration for the service.
type Config struct {
	// Address is the host:port the HTTP server binds to.
	Address string
	// Environment selects the logger profile (production, development, local).
	Environment string
	// LogLevel overrides the environment's default log level when set.
	LogLevel string
	// ShutdownTimeout bounds how long graceful shutdown may drain requests.
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults for any
// unset value.
func Load() Config {
	return Config{
		Address:         env.GetenvOrDefault("SERVER_ADDRESS", ":3000"),
		Environment:     env.GetenvOrDefault("ENV_NAME", "local"),
		LogLevel:        env.GetenvOrDefault("LOG_LEVEL", ""),
		ShutdownTimeout: env.GetenvDurationOrDefault("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}
