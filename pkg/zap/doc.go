// Package zap provides adapters and helpers around zap-based logging.
//
// It bridges the pkg/log abstraction to zap while preserving structured fields
// and OpenTelemetry trace correlation.
package zap
