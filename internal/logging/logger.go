// Package logging is the structured logger the client packages depend on.
// ZerologLogger is the production implementation; Nop discards everything.
package logging

import "context"

// Logger takes a message plus alternating key/value pairs:
//
//	log.Debug(ctx, "request sent", "method", method, "path", path)
//
// Token values are never passed as-is; see Mask.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every entry.
	With(args ...any) Logger
}
