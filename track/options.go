package track

import (
	"log/slog"

	"github.com/w-markus/LiberTEM"
	"github.com/w-markus/LiberTEM/ext"
	"github.com/w-markus/LiberTEM/middleware"
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the structured logger for the tracker.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithConfig replaces the tracker configuration wholesale.
func WithConfig(cfg libertem.Config) Option {
	return func(t *Tracker) { t.cfg = cfg }
}

// WithHistoryDepth sets the number of previous snapshots retained for
// Undo. Zero disables history.
func WithHistoryDepth(n int) Option {
	return func(t *Tracker) { t.cfg.HistoryDepth = n }
}

// WithBufferSize sets the per-subscriber event buffer size.
func WithBufferSize(n int) Option {
	return func(t *Tracker) { t.cfg.BufferSize = n }
}

// WithSubscriberCredits sets the initial flow-control credit balance
// granted to new subscribers.
func WithSubscriberCredits(n int64) Option {
	return func(t *Tracker) { t.cfg.SubscriberCredits = n }
}

// WithExtension registers an extension with the tracker.
func WithExtension(e ext.Extension) Option {
	return func(t *Tracker) { t.pending = append(t.pending, e) }
}

// WithMiddleware adds middleware to the tracker's apply chain.
func WithMiddleware(m middleware.Middleware) Option {
	return func(t *Tracker) { t.mws = append(t.mws, m) }
}
