// Package middleware provides composable middleware for event application.
//
// A [Middleware] is a function that wraps the application of one channel
// event to the snapshot. Middleware are composed into a chain using [Chain]
// and run around every Apply. They are applied right-to-left: the first
// middleware in the slice is the outermost wrapper.
//
//	// logging → recover → apply
//	chain := middleware.Chain(middleware.Logging(logger), middleware.Recover(logger))
//
// # Built-in Middleware
//
//   - [Logging] — logs event kind, job id, duration, and outcome
//   - [Recover] — catches panics and converts them to errors
//   - [Tracing] — wraps application in an OpenTelemetry span
//   - [Metrics] — records per-event duration and outcome counters
//
// # Writing Custom Middleware
//
//	func MyMiddleware() middleware.Middleware {
//	    return func(ctx context.Context, evt event.Event, next middleware.Applier) error {
//	        // pre-processing
//	        err := next(ctx)
//	        // post-processing
//	        return err
//	    }
//	}
//
// Middleware MUST call next to continue the chain unless intentionally
// short-circuiting (e.g., dropping events during replay).
package middleware
