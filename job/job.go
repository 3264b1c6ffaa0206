package job

import (
	"time"

	"github.com/w-markus/LiberTEM"
)

// Phase is the coarse lifecycle phase of a job.
type Phase string

const (
	// PhaseCreating means the job was submitted but the backend has not
	// confirmed it started.
	PhaseCreating Phase = "CREATING"
	// PhaseRunning means the backend is executing the job.
	PhaseRunning Phase = "RUNNING"
	// PhaseDone means the job reached a terminal state.
	PhaseDone Phase = "DONE"
)

// Status is the fine-grained lifecycle phase of a job. It is always
// consistent with Phase: creating pairs with CREATING, in_progress with
// RUNNING, and success/error with DONE.
type Status string

const (
	StatusCreating   Status = "CREATING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusSuccess    Status = "SUCCESS"
	StatusError      Status = "ERROR"
)

// Job is one submitted analysis request tracked through its lifecycle.
// Values are treated as immutable: the reducer replaces a job wholesale
// rather than mutating it, so held references stay valid.
type Job struct {
	// ID is the opaque unique identifier assigned by the submitter.
	ID string `json:"id"`

	// Dataset references the dataset the job operates on.
	Dataset string `json:"dataset"`

	// Phase is the coarse lifecycle phase (wire name kept as "running").
	Phase Phase `json:"running"`

	// Status is the fine-grained lifecycle phase.
	Status Status `json:"status"`

	// Results is the ordered sequence of result artifacts, replaced
	// wholesale on each update — a merge-since-start snapshot, not a delta.
	Results []libertem.Result `json:"results"`

	// StartedAt is set at creation and overwritten when the backend
	// confirms the job actually started; the two instants may differ.
	StartedAt time.Time `json:"startTimestamp"`

	// EndedAt is set exactly once, when the job reaches a terminal state.
	EndedAt *time.Time `json:"endTimestamp,omitempty"`
}

// Terminal reports whether the job reached a terminal state.
func (j Job) Terminal() bool { return j.Phase == PhaseDone }

// Consistent reports whether the phase/status pair is one of the four
// legal combinations.
func (j Job) Consistent() bool {
	switch j.Phase {
	case PhaseCreating:
		return j.Status == StatusCreating
	case PhaseRunning:
		return j.Status == StatusInProgress
	case PhaseDone:
		return j.Status == StatusSuccess || j.Status == StatusError
	default:
		return false
	}
}

// Elapsed returns the duration between start and end for a terminal job,
// and zero otherwise.
func (j Job) Elapsed() time.Duration {
	if j.EndedAt == nil {
		return 0
	}
	return j.EndedAt.Sub(j.StartedAt)
}
