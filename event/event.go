// Package event defines the closed set of lifecycle events the compute
// backend's channel delivers for a job. The set is a sealed tagged union:
// adding a new kind is a compile-time-checked extension of the type switch
// in the reducer, not a runtime string comparison.
package event

import (
	"time"

	"github.com/w-markus/LiberTEM"
	"github.com/w-markus/LiberTEM/id"
)

// Kind identifies a lifecycle event.
type Kind string

const (
	KindCreateJob  Kind = "job.create"
	KindJobStarted Kind = "job.started"
	KindTaskResult Kind = "job.task_result"
	KindFinishJob  Kind = "job.finished"
	KindJobError   Kind = "job.error"
)

// Event is one lifecycle notification for a specific job. Implementations
// are the five structs below; the unexported method seals the set.
type Event interface {
	// Kind identifies the event.
	Kind() Kind

	// JobID returns the id of the job the event targets.
	JobID() string

	sealed()
}

// CreateJob announces a newly submitted job. The id is assigned by the
// submitter at creation time; Timestamp is the submission instant.
type CreateJob struct {
	ID        string
	Dataset   string
	Timestamp time.Time
}

// NewCreate builds a CreateJob with a freshly assigned job id.
func NewCreate(dataset string, ts time.Time) CreateJob {
	return CreateJob{
		ID:        id.NewJobID().String(),
		Dataset:   dataset,
		Timestamp: ts,
	}
}

func (e CreateJob) Kind() Kind    { return KindCreateJob }
func (e CreateJob) JobID() string { return e.ID }
func (CreateJob) sealed()         {}

// JobStarted confirms the backend has actually started executing the job.
// Timestamp is the actual-start instant, which may differ from submission.
type JobStarted struct {
	Job       string
	Timestamp time.Time
}

func (e JobStarted) Kind() Kind    { return KindJobStarted }
func (e JobStarted) JobID() string { return e.Job }
func (JobStarted) sealed()         {}

// TaskResult carries a partial result snapshot. Results is the complete
// merge-since-start sequence, not a delta.
type TaskResult struct {
	Job     string
	Results []libertem.Result
}

func (e TaskResult) Kind() Kind    { return KindTaskResult }
func (e TaskResult) JobID() string { return e.Job }
func (TaskResult) sealed()         {}

// FinishJob announces successful completion with the final result sequence.
type FinishJob struct {
	Job       string
	Timestamp time.Time
	Results   []libertem.Result
}

func (e FinishJob) Kind() Kind    { return KindFinishJob }
func (e FinishJob) JobID() string { return e.Job }
func (FinishJob) sealed()         {}

// JobError announces terminal failure. The last known results are kept.
type JobError struct {
	Job       string
	Timestamp time.Time
}

func (e JobError) Kind() Kind    { return KindJobError }
func (e JobError) JobID() string { return e.Job }
func (JobError) sealed()         {}
