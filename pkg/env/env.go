// Package env provides environment variable helpers with defaults.
package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetenvOrDefault returns the value of the environment variable key, or
// fallback when the variable is unset or blank.
func GetenvOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	return value
}

// GetenvIntOrDefault returns the integer value of the environment variable
// key, or fallback when the variable is unset, blank, or not an integer.
func GetenvIntOrDefault(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return parsed
}

// GetenvDurationOrDefault returns the duration value of the environment
// variable key, or fallback when the variable is unset, blank, or not a
// valid duration.
func GetenvDurationOrDefault(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}

	return parsed
}
