package testutil

import (
	"context"
	"time"

	"contactbook/pkg/requestcontext"
)

// CommandContext returns a context as the session builds it for one command,
// with the clock pinned to now.
func CommandContext(commandID string, now time.Time) context.Context {
	ctx := requestcontext.WithCommandID(context.Background(), commandID)
	return requestcontext.WithTime(ctx, now)
}

// Date is a midday UTC timestamp for the given calendar day, far enough from
// midnight that local-time conversions keep the date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
