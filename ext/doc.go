// Package ext defines the extension system for the tracker.
//
// Extensions are notified after a channel event changes the snapshot and
// can react — updating a view model, recording metrics, writing audit
// logs. Each lifecycle hook is a separate interface so extensions opt in
// only to the transitions they care about.
//
// # Implementing an Extension
//
//	type MyExtension struct{}
//
//	func (e *MyExtension) Name() string { return "my-extension" }
//
//	// Opt in to specific hooks by implementing their interfaces.
//	func (e *MyExtension) OnJobFinished(ctx context.Context, j *job.Job, elapsed time.Duration) error {
//	    log.Printf("job %s finished in %s", j.ID, elapsed)
//	    return nil
//	}
//
// # Job Lifecycle Hooks
//
//   - [JobCreated] — a new job was inserted into the snapshot
//   - [JobStarted] — the backend confirmed the job started
//   - [JobResults] — a partial result snapshot replaced the previous one
//   - [JobFinished] — the job completed successfully
//   - [JobErrored] — the job failed terminally
//   - [Shutdown] — the tracker is shutting down
//
// The [Registry] fans each transition out to all registered extensions
// that implement the corresponding hook interface. Hook errors are logged
// and swallowed: an extension can never fail an event application.
package ext
