package job_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/w-markus/LiberTEM"
	"github.com/w-markus/LiberTEM/event"
	"github.com/w-markus/LiberTEM/job"
)

func result(name string) libertem.Result {
	return libertem.Result{Name: name, Data: json.RawMessage(`{}`)}
}

func ts(ms int64) time.Time { return time.UnixMilli(ms) }

// apply runs a sequence of events through the reducer from an empty snapshot.
func apply(events ...event.Event) job.Snapshot {
	s := job.NewSnapshot()
	for _, e := range events {
		s = job.Reduce(s, e)
	}
	return s
}

func TestCreate(t *testing.T) {
	t.Parallel()

	s := apply(event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	j, ok := s.Get("j1")
	if !ok {
		t.Fatal("job j1 missing")
	}
	if j.Phase != job.PhaseCreating {
		t.Errorf("Phase = %q, want %q", j.Phase, job.PhaseCreating)
	}
	if j.Status != job.StatusCreating {
		t.Errorf("Status = %q, want %q", j.Status, job.StatusCreating)
	}
	if len(j.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(j.Results))
	}
	if !j.StartedAt.Equal(ts(100)) {
		t.Errorf("StartedAt = %v, want %v", j.StartedAt, ts(100))
	}
	if j.EndedAt != nil {
		t.Errorf("EndedAt = %v, want nil", j.EndedAt)
	}
}

func TestCreateIdempotent(t *testing.T) {
	t.Parallel()

	first := apply(event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)})
	twice := job.Reduce(first, event.CreateJob{ID: "j1", Dataset: "other", Timestamp: ts(999)})

	if twice.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", twice.Len())
	}
	j, _ := twice.Get("j1")
	if j.Dataset != "d1" {
		t.Errorf("Dataset = %q, want %q (duplicate create must keep the original)", j.Dataset, "d1")
	}
	if !j.StartedAt.Equal(ts(100)) {
		t.Errorf("StartedAt = %v, want %v", j.StartedAt, ts(100))
	}
}

func TestStartedOverwritesTimestamp(t *testing.T) {
	t.Parallel()

	s := apply(
		event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)},
		event.JobStarted{Job: "j1", Timestamp: ts(105)},
	)

	j, _ := s.Get("j1")
	if j.Phase != job.PhaseRunning {
		t.Errorf("Phase = %q, want %q", j.Phase, job.PhaseRunning)
	}
	if j.Status != job.StatusInProgress {
		t.Errorf("Status = %q, want %q", j.Status, job.StatusInProgress)
	}
	if !j.StartedAt.Equal(ts(105)) {
		t.Errorf("StartedAt = %v, want %v (actual start replaces submission)", j.StartedAt, ts(105))
	}
}

func TestTaskResultReplacesWholesale(t *testing.T) {
	t.Parallel()

	s := apply(
		event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)},
		event.JobStarted{Job: "j1", Timestamp: ts(105)},
		event.TaskResult{Job: "j1", Results: []libertem.Result{result("r1")}},
		event.TaskResult{Job: "j1", Results: []libertem.Result{result("r1"), result("r2")}},
	)

	j, _ := s.Get("j1")
	if len(j.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2 (replacement, not concatenation)", len(j.Results))
	}
	if j.Results[0].Name != "r1" || j.Results[1].Name != "r2" {
		t.Errorf("Results = [%q, %q], want [r1, r2]", j.Results[0].Name, j.Results[1].Name)
	}
	if j.Phase != job.PhaseRunning || j.Status != job.StatusInProgress {
		t.Errorf("Phase/Status = %q/%q, want untouched RUNNING/IN_PROGRESS", j.Phase, j.Status)
	}
}

func TestFinish(t *testing.T) {
	t.Parallel()

	s := apply(
		event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)},
		event.JobStarted{Job: "j1", Timestamp: ts(105)},
		event.TaskResult{Job: "j1", Results: []libertem.Result{result("r1"), result("r2")}},
		event.FinishJob{Job: "j1", Timestamp: ts(200), Results: []libertem.Result{result("r1"), result("r2"), result("r3")}},
	)

	j, _ := s.Get("j1")
	if j.Phase != job.PhaseDone {
		t.Errorf("Phase = %q, want %q", j.Phase, job.PhaseDone)
	}
	if j.Status != job.StatusSuccess {
		t.Errorf("Status = %q, want %q", j.Status, job.StatusSuccess)
	}
	if len(j.Results) != 3 {
		t.Errorf("len(Results) = %d, want 3", len(j.Results))
	}
	if j.EndedAt == nil || !j.EndedAt.Equal(ts(200)) {
		t.Errorf("EndedAt = %v, want %v", j.EndedAt, ts(200))
	}
	if got := j.Elapsed(); got != 95*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 95ms", got)
	}
}

func TestErrorKeepsResults(t *testing.T) {
	t.Parallel()

	s := apply(
		event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)},
		event.JobStarted{Job: "j1", Timestamp: ts(105)},
		event.TaskResult{Job: "j1", Results: []libertem.Result{result("r1")}},
		event.JobError{Job: "j1", Timestamp: ts(150)},
	)

	j, _ := s.Get("j1")
	if j.Status != job.StatusError {
		t.Errorf("Status = %q, want %q", j.Status, job.StatusError)
	}
	if j.EndedAt == nil || !j.EndedAt.Equal(ts(150)) {
		t.Errorf("EndedAt = %v, want %v", j.EndedAt, ts(150))
	}
	if len(j.Results) != 1 || j.Results[0].Name != "r1" {
		t.Errorf("Results = %v, want last known value kept", j.Results)
	}
}

func TestEventsForUnknownIDAreNoOps(t *testing.T) {
	t.Parallel()

	events := []event.Event{
		event.JobStarted{Job: "ghost", Timestamp: ts(105)},
		event.TaskResult{Job: "ghost", Results: []libertem.Result{result("r1")}},
		event.FinishJob{Job: "ghost", Timestamp: ts(200)},
		event.JobError{Job: "ghost", Timestamp: ts(150)},
	}

	for _, e := range events {
		s := job.Reduce(job.NewSnapshot(), e)
		if s.Len() != 0 {
			t.Errorf("%s on unknown id materialized a job", e.Kind())
		}
	}
}

func TestJobsAreIndependent(t *testing.T) {
	t.Parallel()

	s := apply(
		event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)},
		event.CreateJob{ID: "j2", Dataset: "d2", Timestamp: ts(101)},
		event.JobStarted{Job: "j2", Timestamp: ts(110)},
		event.TaskResult{Job: "j2", Results: []libertem.Result{result("r1")}},
		event.FinishJob{Job: "j2", Timestamp: ts(300)},
	)

	j1, _ := s.Get("j1")
	if j1.Phase != job.PhaseCreating || j1.Status != job.StatusCreating {
		t.Errorf("j1 = %q/%q, want untouched CREATING/CREATING", j1.Phase, j1.Status)
	}
	if len(j1.Results) != 0 || j1.EndedAt != nil {
		t.Error("j1 changed by events targeting j2")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	before := apply(event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)})
	_ = job.Reduce(before, event.FinishJob{Job: "j1", Timestamp: ts(200)})

	j, _ := before.Get("j1")
	if j.Phase != job.PhaseCreating {
		t.Errorf("input snapshot mutated: Phase = %q", j.Phase)
	}
	if j.EndedAt != nil {
		t.Error("input snapshot mutated: EndedAt set")
	}
}

func TestResultsNotAliasedToEventPayload(t *testing.T) {
	t.Parallel()

	payload := []libertem.Result{result("r1")}
	s := apply(
		event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)},
		event.TaskResult{Job: "j1", Results: payload},
	)

	payload[0] = result("tampered")

	j, _ := s.Get("j1")
	if j.Results[0].Name != "r1" {
		t.Errorf("Results[0].Name = %q, want %q (snapshot aliases event payload)", j.Results[0].Name, "r1")
	}
}

func TestNilEventIsNoOp(t *testing.T) {
	t.Parallel()

	before := apply(event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)})
	after := job.Reduce(before, nil)

	if after.Len() != before.Len() {
		t.Fatal("nil event changed the snapshot")
	}
}

// TestInvariants drives a representative event sequence and checks the
// cross-cutting invariants after every step: phase/status consistency,
// EndedAt iff terminal, and the id/entity bijection.
func TestInvariants(t *testing.T) {
	t.Parallel()

	events := []event.Event{
		event.CreateJob{ID: "j1", Dataset: "d1", Timestamp: ts(100)},
		event.CreateJob{ID: "j2", Dataset: "d1", Timestamp: ts(101)},
		event.JobStarted{Job: "j1", Timestamp: ts(105)},
		event.TaskResult{Job: "j1", Results: []libertem.Result{result("r1")}},
		event.JobStarted{Job: "j2", Timestamp: ts(106)},
		event.JobError{Job: "j2", Timestamp: ts(150)},
		event.FinishJob{Job: "j1", Timestamp: ts(200), Results: []libertem.Result{result("r1"), result("r2")}},
		event.TaskResult{Job: "ghost", Results: []libertem.Result{result("x")}},
		event.CreateJob{ID: "j1", Dataset: "dup", Timestamp: ts(300)},
	}

	s := job.NewSnapshot()
	for i, e := range events {
		s = job.Reduce(s, e)

		if len(s.IDs) != len(s.ByID) {
			t.Fatalf("step %d: bijection broken: %d ids, %d entries", i, len(s.IDs), len(s.ByID))
		}
		for _, id := range s.IDs {
			j, ok := s.Get(id)
			if !ok {
				t.Fatalf("step %d: id %q has no entity", i, id)
			}
			if !j.Consistent() {
				t.Errorf("step %d: job %q has inconsistent pair %q/%q", i, id, j.Phase, j.Status)
			}
			if (j.EndedAt != nil) != j.Terminal() {
				t.Errorf("step %d: job %q EndedAt set = %v but Terminal() = %v", i, id, j.EndedAt != nil, j.Terminal())
			}
		}
	}
}
