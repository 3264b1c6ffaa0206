// Package wire defines the shape of the messages the backend's persistent
// channel delivers, and codecs for decoding them. The channel transport
// itself — sockets, reconnection, authentication — is an external
// collaborator; only the message contract lives here.
package wire

import (
	"fmt"
	"time"

	"github.com/w-markus/LiberTEM"
	"github.com/w-markus/LiberTEM/event"
)

// Type identifies the channel message kind.
type Type string

const (
	TypeCreate     Type = "CREATE"
	TypeJobStarted Type = "JOB_STARTED"
	TypeTaskResult Type = "TASK_RESULT"
	TypeFinishJob  Type = "FINISH_JOB"
	TypeJobError   Type = "JOB_ERROR"
)

// Message is the channel message envelope. Timestamps are milliseconds
// since the Unix epoch, as delivered by the backend.
type Message struct {
	// Type categorizes the message.
	Type Type `json:"messageType" msgpack:"messageType"`

	// ID is the submitter-assigned job id (CREATE only).
	ID string `json:"id,omitempty" msgpack:"id,omitempty"`

	// Dataset references the dataset the job operates on (CREATE only).
	Dataset string `json:"dataset,omitempty" msgpack:"dataset,omitempty"`

	// Job is the id of the job the message targets (all but CREATE).
	Job string `json:"job,omitempty" msgpack:"job,omitempty"`

	// Timestamp records when the backend emitted the message.
	Timestamp int64 `json:"timestamp,omitempty" msgpack:"timestamp,omitempty"`

	// Results is the complete result sequence as of this message.
	Results []libertem.Result `json:"results,omitempty" msgpack:"results,omitempty"`
}

// Event maps the message to its lifecycle event. It returns
// libertem.ErrUnknownMessage for a message type outside the closed set —
// callers drop those, matching the reducer's ignore-unknown contract —
// and libertem.ErrBadMessage when a required field is missing.
func (m *Message) Event() (event.Event, error) {
	switch m.Type {
	case TypeCreate:
		if m.ID == "" {
			return nil, fmt.Errorf("%w: CREATE without id", libertem.ErrBadMessage)
		}
		return event.CreateJob{
			ID:        m.ID,
			Dataset:   m.Dataset,
			Timestamp: time.UnixMilli(m.Timestamp),
		}, nil

	case TypeJobStarted:
		if m.Job == "" {
			return nil, fmt.Errorf("%w: JOB_STARTED without job", libertem.ErrBadMessage)
		}
		return event.JobStarted{
			Job:       m.Job,
			Timestamp: time.UnixMilli(m.Timestamp),
		}, nil

	case TypeTaskResult:
		if m.Job == "" {
			return nil, fmt.Errorf("%w: TASK_RESULT without job", libertem.ErrBadMessage)
		}
		return event.TaskResult{
			Job:     m.Job,
			Results: m.Results,
		}, nil

	case TypeFinishJob:
		if m.Job == "" {
			return nil, fmt.Errorf("%w: FINISH_JOB without job", libertem.ErrBadMessage)
		}
		return event.FinishJob{
			Job:       m.Job,
			Timestamp: time.UnixMilli(m.Timestamp),
			Results:   m.Results,
		}, nil

	case TypeJobError:
		if m.Job == "" {
			return nil, fmt.Errorf("%w: JOB_ERROR without job", libertem.ErrBadMessage)
		}
		return event.JobError{
			Job:       m.Job,
			Timestamp: time.UnixMilli(m.Timestamp),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", libertem.ErrUnknownMessage, m.Type)
	}
}
