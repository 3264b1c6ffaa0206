package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/w-markus/LiberTEM/event"
)

// Logging returns middleware that logs every event application.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, evt event.Event, next Applier) error {
		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("event apply failed",
				slog.String("kind", string(evt.Kind())),
				slog.String("job_id", evt.JobID()),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Debug("event applied",
				slog.String("kind", string(evt.Kind())),
				slog.String("job_id", evt.JobID()),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}
