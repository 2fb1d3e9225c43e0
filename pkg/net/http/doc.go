// Package http provides Fiber-oriented HTTP helpers, middleware, and error handling.
//
// Core entry points include response helpers (Respond, RespondError), request
// body validation (ParseAndValidate), and middleware builders (WithLogging,
// WithCORS) for consistent request handling.
package http
