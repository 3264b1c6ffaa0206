package event_test

import (
	"strings"
	"testing"
	"time"

	"github.com/w-markus/LiberTEM/event"
)

func TestNewCreateAssignsJobID(t *testing.T) {
	t.Parallel()

	e := event.NewCreate("ds-1", time.UnixMilli(100))
	if !strings.HasPrefix(e.ID, "job_") {
		t.Errorf("ID = %q, want job_ prefix", e.ID)
	}
	if e.Dataset != "ds-1" {
		t.Errorf("Dataset = %q, want %q", e.Dataset, "ds-1")
	}
	if e.JobID() != e.ID {
		t.Errorf("JobID() = %q, want %q", e.JobID(), e.ID)
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		evt  event.Event
		kind event.Kind
		job  string
	}{
		{event.CreateJob{ID: "j1"}, event.KindCreateJob, "j1"},
		{event.JobStarted{Job: "j1"}, event.KindJobStarted, "j1"},
		{event.TaskResult{Job: "j1"}, event.KindTaskResult, "j1"},
		{event.FinishJob{Job: "j1"}, event.KindFinishJob, "j1"},
		{event.JobError{Job: "j1"}, event.KindJobError, "j1"},
	}

	for _, tt := range tests {
		if got := tt.evt.Kind(); got != tt.kind {
			t.Errorf("Kind() = %q, want %q", got, tt.kind)
		}
		if got := tt.evt.JobID(); got != tt.job {
			t.Errorf("JobID() = %q, want %q", got, tt.job)
		}
	}
}
