package utils

import (
	"context"
	"time"
)

// DBTimeout bounds a single repository call.
var DBTimeout = 5 * time.Second

// WithDBTimeout derives the context for one query. When the caller's deadline
// is already closer than DBTimeout it is left untouched.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < DBTimeout {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, DBTimeout)
}
