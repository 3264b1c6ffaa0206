package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/w-markus/LiberTEM/event"
)

// Recover returns middleware that recovers from panics in the applier chain.
// Panics are converted to errors and logged with a stack trace, so one bad
// event can never take down the loop that drains the channel.
func Recover(logger *slog.Logger) Middleware {
	return func(ctx context.Context, evt event.Event, next Applier) (retErr error) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("event apply panicked",
					slog.String("kind", string(evt.Kind())),
					slog.String("job_id", evt.JobID()),
					slog.Any("panic", r),
					slog.String("stack", stack),
				)
				retErr = fmt.Errorf("panic applying %s: %v", evt.Kind(), r)
			}
		}()
		return next(ctx)
	}
}
