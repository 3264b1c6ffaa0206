package ext

import (
	"context"
	"time"

	"github.com/w-markus/LiberTEM/job"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// JobCreated is called after a CREATE event inserts a new job.
type JobCreated interface {
	OnJobCreated(ctx context.Context, j *job.Job) error
}

// JobStarted is called when the backend confirms a job started.
type JobStarted interface {
	OnJobStarted(ctx context.Context, j *job.Job) error
}

// JobResults is called when a partial result snapshot replaces the
// previous one. The new sequence is on j.Results.
type JobResults interface {
	OnJobResults(ctx context.Context, j *job.Job) error
}

// JobFinished is called after a job completes successfully.
type JobFinished interface {
	OnJobFinished(ctx context.Context, j *job.Job, elapsed time.Duration) error
}

// JobErrored is called when a job fails terminally.
type JobErrored interface {
	OnJobErrored(ctx context.Context, j *job.Job) error
}

// Shutdown is called when the tracker shuts down gracefully.
type Shutdown interface {
	OnShutdown(ctx context.Context) error
}
