package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/w-markus/LiberTEM/ext"
	"github.com/w-markus/LiberTEM/job"
)

// Compile-time interface checks.
var (
	_ ext.Extension   = (*Extension)(nil)
	_ ext.JobCreated  = (*Extension)(nil)
	_ ext.JobStarted  = (*Extension)(nil)
	_ ext.JobResults  = (*Extension)(nil)
	_ ext.JobFinished = (*Extension)(nil)
	_ ext.JobErrored  = (*Extension)(nil)
)

// Audit actions. Each constant corresponds to one ext lifecycle hook and
// becomes the Action field of the recorded entry.
const (
	ActionJobCreated  = "job.created"
	ActionJobStarted  = "job.started"
	ActionJobResults  = "job.results"
	ActionJobFinished = "job.finished"
	ActionJobErrored  = "job.errored"
)

// AllActions returns every action this extension can record.
func AllActions() []string {
	return []string{
		ActionJobCreated,
		ActionJobStarted,
		ActionJobResults,
		ActionJobFinished,
		ActionJobErrored,
	}
}

// Severity constants.
const (
	SeverityInfo     = "info"
	SeverityCritical = "critical"
)

// Outcome constants.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Extension records job lifecycle transitions through a [Recorder].
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures an Extension.
type Option func(*Extension)

// WithActions restricts the extension to record only the listed actions.
// By default all actions are recorded. Unknown actions are silently ignored.
func WithActions(actions ...string) Option {
	return func(e *Extension) {
		e.enabled = make(map[string]bool, len(actions))
		for _, a := range actions {
			e.enabled[a] = true
		}
	}
}

// WithLogger sets a custom logger for the extension.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extension) { e.logger = l }
}

// New creates an Extension that records transitions through r.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements ext.Extension.
func (e *Extension) Name() string { return "audit" }

// OnJobCreated implements ext.JobCreated.
func (e *Extension) OnJobCreated(ctx context.Context, j *job.Job) error {
	return e.record(ctx, ActionJobCreated, SeverityInfo, OutcomeSuccess, j, 0)
}

// OnJobStarted implements ext.JobStarted.
func (e *Extension) OnJobStarted(ctx context.Context, j *job.Job) error {
	return e.record(ctx, ActionJobStarted, SeverityInfo, OutcomeSuccess, j, 0)
}

// OnJobResults implements ext.JobResults.
func (e *Extension) OnJobResults(ctx context.Context, j *job.Job) error {
	return e.record(ctx, ActionJobResults, SeverityInfo, OutcomeSuccess, j, 0)
}

// OnJobFinished implements ext.JobFinished.
func (e *Extension) OnJobFinished(ctx context.Context, j *job.Job, elapsed time.Duration) error {
	return e.record(ctx, ActionJobFinished, SeverityInfo, OutcomeSuccess, j, elapsed)
}

// OnJobErrored implements ext.JobErrored.
func (e *Extension) OnJobErrored(ctx context.Context, j *job.Job) error {
	return e.record(ctx, ActionJobErrored, SeverityCritical, OutcomeFailure, j, 0)
}

// record builds an entry and sends it to the recorder if the action is
// enabled. Recorder failures are logged, never propagated: an audit
// backend outage must not stall the apply loop.
func (e *Extension) record(ctx context.Context, action, severity, outcome string, j *job.Job, elapsed time.Duration) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	entry := &Entry{
		Action:      action,
		JobID:       j.ID,
		Dataset:     j.Dataset,
		Phase:       string(j.Phase),
		Status:      string(j.Status),
		ResultCount: len(j.Results),
		ElapsedMs:   elapsed.Milliseconds(),
		Severity:    severity,
		Outcome:     outcome,
		RecordedAt:  e.now().UTC(),
	}

	if err := e.recorder.Record(ctx, entry); err != nil {
		e.logger.Warn("audit: failed to record entry",
			"action", action,
			"job_id", j.ID,
			"error", err,
		)
	}
	return nil
}
