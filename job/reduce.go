package job

import (
	"slices"

	"github.com/w-markus/LiberTEM"
	"github.com/w-markus/LiberTEM/event"
	"github.com/w-markus/LiberTEM/norm"
)

// Snapshot is the normalized state of all tracked jobs, keyed by id, in
// submission order.
type Snapshot = norm.Collection[Job]

// NewSnapshot returns an empty snapshot.
func NewSnapshot() Snapshot { return norm.New[Job]() }

// Reduce applies one channel event to a snapshot and returns the next
// snapshot. It is pure and total: the input is never mutated, the result
// is always valid, and nothing is ever raised. Events targeting unknown
// ids and duplicate creations are silent no-ops; a nil or unrecognized
// event returns the input unchanged.
func Reduce(s Snapshot, e event.Event) Snapshot {
	switch e := e.(type) {
	case event.CreateJob:
		return s.Insert(e.ID, Job{
			ID:        e.ID,
			Dataset:   e.Dataset,
			Phase:     PhaseCreating,
			Status:    StatusCreating,
			Results:   []libertem.Result{},
			StartedAt: e.Timestamp,
		})

	case event.JobStarted:
		return s.Update(e.Job, func(j Job) Job {
			j.Phase = PhaseRunning
			j.Status = StatusInProgress
			// The actual-start instant replaces the submission instant.
			j.StartedAt = e.Timestamp
			return j
		})

	case event.TaskResult:
		// Full replacement, never an append: each event carries the
		// complete sequence. Clone so the snapshot never aliases the
		// event payload.
		results := slices.Clone(e.Results)
		return s.Update(e.Job, func(j Job) Job {
			j.Results = results
			return j
		})

	case event.FinishJob:
		results := slices.Clone(e.Results)
		ended := e.Timestamp
		return s.Update(e.Job, func(j Job) Job {
			j.Phase = PhaseDone
			j.Status = StatusSuccess
			j.Results = results
			j.EndedAt = &ended
			return j
		})

	case event.JobError:
		ended := e.Timestamp
		return s.Update(e.Job, func(j Job) Job {
			j.Phase = PhaseDone
			j.Status = StatusError
			// Results keep their last known value.
			j.EndedAt = &ended
			return j
		})

	default:
		return s
	}
}
