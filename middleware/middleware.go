package middleware

import (
	"context"

	"github.com/w-markus/LiberTEM/event"
)

// Applier is the terminal function that applies the event to the snapshot.
type Applier func(ctx context.Context) error

// Middleware wraps an Applier with cross-cutting logic.
// It receives the current context, the event being applied, and the
// next applier to call. Middleware MUST call next to continue the chain
// (unless short-circuiting on error).
type Middleware func(ctx context.Context, evt event.Event, next Applier) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, metrics) executes as:
//
//	logging → recover → metrics → applier
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, evt event.Event, next Applier) error {
		// Build the chain from the end backwards.
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, evt, prev)
			}
		}
		return h(ctx)
	}
}
