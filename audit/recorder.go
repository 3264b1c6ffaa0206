package audit

import (
	"context"
	"sync"
	"time"
)

// Entry is one recorded lifecycle transition.
type Entry struct {
	// Action names the transition, one of the Action constants.
	Action string `json:"action"`

	// JobID and Dataset identify the job the transition belongs to.
	JobID   string `json:"job_id"`
	Dataset string `json:"dataset,omitempty"`

	// Phase and Status are the job's state after the transition.
	Phase  string `json:"phase"`
	Status string `json:"status"`

	// ResultCount is the length of the result sequence after the transition.
	ResultCount int `json:"result_count"`

	// ElapsedMs is the job's total runtime, set only on ActionJobFinished.
	ElapsedMs int64 `json:"elapsed_ms,omitempty"`

	Severity   string    `json:"severity"`
	Outcome    string    `json:"outcome"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Recorder is the interface audit backends implement. It is defined
// locally so callers can bridge to whatever trail they run, from a log
// file to an external audit service.
type Recorder interface {
	// Record persists a fully-formed audit entry.
	Record(ctx context.Context, e *Entry) error
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, e *Entry) error

func (f RecorderFunc) Record(ctx context.Context, e *Entry) error {
	return f(ctx, e)
}

// Memory is a bounded in-memory Recorder. Once the limit is reached the
// oldest entries are discarded. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries []*Entry
	limit   int
}

// NewMemory creates an in-memory recorder that retains at most limit
// entries. A non-positive limit retains everything.
func NewMemory(limit int) *Memory {
	return &Memory{limit: limit}
}

// Record implements Recorder.
func (m *Memory) Record(_ context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.limit > 0 && len(m.entries) == m.limit {
		m.entries = append(m.entries[1:], e)
		return nil
	}
	m.entries = append(m.entries, e)
	return nil
}

// Entries returns a copy of the recorded trail, oldest first.
func (m *Memory) Entries() []*Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of retained entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
