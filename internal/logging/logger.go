// Package logging defines the structured logger the server components share.
// Handlers and the app wire-up depend on this interface, not on a concrete
// backend, so the backend can change without touching them.
package logging

import "context"

// Logger logs structured messages at three levels. The variadic args are
// alternating key–value pairs, slog-style:
//
//	log.Info(ctx, "request", "method", m, "path", p, "status", code)
type Logger interface {
	// Info records normal operation: startup, requests, shutdown.
	Info(ctx context.Context, msg string, args ...any)

	// Warn records unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures that were converted into an error response.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key–value pairs on
	// every subsequent message.
	With(args ...any) Logger
}
