package track

import (
	"context"
	"log/slog"
	"sync"

	"github.com/w-markus/LiberTEM"
	"github.com/w-markus/LiberTEM/event"
	"github.com/w-markus/LiberTEM/ext"
	"github.com/w-markus/LiberTEM/id"
	"github.com/w-markus/LiberTEM/job"
	"github.com/w-markus/LiberTEM/middleware"
	"github.com/w-markus/LiberTEM/stream"
)

// Tracker owns the current job snapshot and applies channel events to it
// serially. Each Apply runs the event through the middleware chain,
// reduces it onto the snapshot, and fans the resulting transition out to
// registered extensions and stream subscribers.
type Tracker struct {
	mu      sync.RWMutex
	snap    job.Snapshot
	history []job.Snapshot
	closed  bool

	cfg        libertem.Config
	logger     *slog.Logger
	extensions *ext.Registry
	broker     *stream.Broker
	pending    []ext.Extension
	mws        []middleware.Middleware
	chain      middleware.Middleware
}

// New creates a Tracker with an empty snapshot.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		snap:   job.NewSnapshot(),
		cfg:    libertem.DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.extensions = ext.NewRegistry(t.logger)
	for _, e := range t.pending {
		t.extensions.Register(e)
	}
	t.pending = nil

	// The broker is registered last so user extensions observe
	// transitions before they reach subscribers.
	t.broker = stream.NewBroker(t.logger,
		stream.WithBufferSize(t.cfg.BufferSize),
		stream.WithDefaultCredits(t.cfg.SubscriberCredits),
	)
	t.extensions.Register(t.broker)

	t.chain = middleware.Chain(t.mws...)
	return t
}

// Apply runs one channel event through the middleware chain and reduces
// it onto the snapshot. Events are applied strictly in call order; the
// snapshot is never advanced if the chain returns an error. A no-op event
// (duplicate create, unknown job id) succeeds without notifying anyone.
func (t *Tracker) Apply(ctx context.Context, evt event.Event) error {
	if evt == nil {
		return libertem.ErrNilEvent
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return libertem.ErrTrackerClosed
	}

	prev := t.snap
	apply := func(context.Context) error {
		t.snap = job.Reduce(prev, evt)
		return nil
	}
	if err := t.chain(ctx, evt, apply); err != nil {
		t.snap = prev
		t.mu.Unlock()
		return err
	}

	next := t.snap
	changed := transitioned(prev, evt)
	if changed && t.cfg.HistoryDepth > 0 {
		if len(t.history) == t.cfg.HistoryDepth {
			t.history = append(t.history[1:], prev)
		} else {
			t.history = append(t.history, prev)
		}
	}
	t.mu.Unlock()

	if changed {
		if j, ok := next.Get(evt.JobID()); ok {
			t.notify(ctx, evt, &j)
		}
	}
	return nil
}

// transitioned reports whether evt changes prev. Creation is a no-op for
// an id already present; every other kind is a no-op for an id absent.
func transitioned(prev job.Snapshot, evt event.Event) bool {
	if _, ok := evt.(event.CreateJob); ok {
		return !prev.Has(evt.JobID())
	}
	return prev.Has(evt.JobID())
}

func (t *Tracker) notify(ctx context.Context, evt event.Event, j *job.Job) {
	switch evt.(type) {
	case event.CreateJob:
		t.extensions.EmitJobCreated(ctx, j)
	case event.JobStarted:
		t.extensions.EmitJobStarted(ctx, j)
	case event.TaskResult:
		t.extensions.EmitJobResults(ctx, j)
	case event.FinishJob:
		t.extensions.EmitJobFinished(ctx, j, j.Elapsed())
	case event.JobError:
		t.extensions.EmitJobErrored(ctx, j)
	}
}

// Snapshot returns the current snapshot. Snapshots are immutable, so the
// returned value stays valid after further Apply calls.
func (t *Tracker) Snapshot() job.Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap
}

// Job returns the tracked job with the given id.
func (t *Tracker) Job(jobID string) (job.Job, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap.Get(jobID)
}

// Jobs returns all tracked jobs in submission order.
func (t *Tracker) Jobs() []job.Job {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap.All()
}

// Len returns the number of tracked jobs.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap.Len()
}

// Undo restores the snapshot preceding the last state-changing Apply.
// It reports whether a snapshot was restored. Undo does not notify
// extensions or subscribers.
func (t *Tracker) Undo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || len(t.history) == 0 {
		return false
	}
	t.snap = t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	return true
}

// Subscribe creates a stream subscriber on the given topics. An empty
// subscriberID is replaced with a fresh generated one.
func (t *Tracker) Subscribe(subscriberID string, topics ...string) *stream.Subscriber {
	if subscriberID == "" {
		subscriberID = id.NewSubscriberID().String()
	}
	return t.broker.Subscribe(subscriberID, topics...)
}

// Unsubscribe removes a subscriber from all topics and closes it.
func (t *Tracker) Unsubscribe(subscriberID string) {
	t.broker.RemoveSubscriber(subscriberID)
}

// Broker returns the tracker's stream broker.
func (t *Tracker) Broker() *stream.Broker { return t.broker }

// Extensions returns the tracker's extension registry.
func (t *Tracker) Extensions() *ext.Registry { return t.extensions }

// Close shuts the tracker down. Extensions receive the shutdown hook and
// all stream subscribers are closed. Further Apply calls return
// ErrTrackerClosed; the snapshot stays readable.
func (t *Tracker) Close(ctx context.Context) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return libertem.ErrTrackerClosed
	}
	t.closed = true
	t.mu.Unlock()

	t.extensions.EmitShutdown(ctx)
	t.logger.Info("tracker closed")
	return nil
}
