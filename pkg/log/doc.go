// Package log defines the logging interface and typed logging fields.
//
// Adapters (such as the zap package) implement Logger so application code can
// keep logging calls consistent across backends.
package log
