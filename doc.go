// Package libertem provides client-side lifecycle tracking for asynchronous
// analysis jobs submitted to a remote LiberTEM compute backend.
//
// As partial and final results stream back over a persistent channel, the
// backend's progress messages are projected into an immutable, normalized
// snapshot of every job the client has submitted. The projection is a pure
// reduction: each event produces a new snapshot, the previous one is never
// mutated, and observers detect change by simple equality.
//
// # Quick Start
//
//	t := track.New(
//	    track.WithLogger(logger),
//	    track.WithHistoryDepth(32),
//	)
//
//	create := event.NewCreate(dataset, time.Now())
//	_ = t.Apply(ctx, create)
//
//	sub := t.Subscribe("", stream.JobTopic(create.ID))
//	for evt := range sub.C() {
//	    // render progress
//	}
//
// # Architecture
//
// The core is split into small packages, composed bottom-up: norm holds the
// generic insertion-ordered entity collection, event defines the closed set
// of lifecycle events the channel delivers, and job holds the Job entity and
// the reducer over it. The track package owns the current snapshot and drives
// serial event application through a middleware chain, fanning transitions
// out to extensions and stream subscribers.
//
// Transport, reconnection, and rendering are external collaborators: this
// library consumes the shape of the channel's messages (package wire) and
// exposes the shape of its state, nothing more.
//
// All client-assigned identifiers use TypeID — type-prefixed, K-sortable,
// UUIDv7-based identifiers.
package libertem
