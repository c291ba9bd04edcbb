// Package ctxutil provides context helpers shared by long-running commands.
package ctxutil

import (
	"context"
	"time"
)

// Canceled returns ctx.Err(): nil while ctx is live, otherwise
// context.Canceled or context.DeadlineExceeded.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}

// WithOptionalTimeout bounds ctx by d when d is positive. A zero or negative
// d leaves ctx unbounded. The returned cancel func must always be called.
func WithOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
