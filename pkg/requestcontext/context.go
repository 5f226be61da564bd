// Package requestcontext provides context accessors for values scoped to a
// single console command.
//
// Usage in handlers (read values):
//
//	now := requestcontext.Now(ctx)
//	commandID := requestcontext.CommandID(ctx)
//
// Usage in the session loop (set values):
//
//	ctx = requestcontext.WithCommandID(ctx, uuid.NewString())
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

type (
	commandIDKey   struct{}
	commandTimeKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyCommandID   = commandIDKey{}
	ContextKeyCommandTime = commandTimeKey{}
)

// CommandID retrieves the id of the command being executed.
func CommandID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyCommandID).(string); ok {
		return id
	}
	return ""
}

// WithCommandID injects a command id into the context.
func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyCommandID, id)
}

// Now retrieves the command-scoped time from context.
// Falls back to time.Now() if not set.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyCommandTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
// Birthday windows are computed from this value, so tests pin it here.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyCommandTime, t)
}
