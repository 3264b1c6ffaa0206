// Package track wires the tracking subsystems together. A [Tracker] owns
// the current snapshot and drives serial event application: each event is
// run through the middleware chain, reduced onto the snapshot, and the
// resulting transition is fanned out to extensions and stream subscribers.
//
// The reducer itself is pure — the Tracker is the external driver the
// design delegates state ownership to. Events must be delivered in the
// order the channel produced them per job id; the Tracker applies them
// literally and does not reorder or buffer.
//
//	t := track.New(
//	    track.WithLogger(logger),
//	    track.WithMiddleware(middleware.Recover(logger)),
//	    track.WithHistoryDepth(32),
//	)
//
//	sub := t.Subscribe("", stream.TopicJobs)
//	for msg := range channelMessages {
//	    evt, err := msg.Event()
//	    if err != nil {
//	        continue // unknown message types are dropped
//	    }
//	    _ = t.Apply(ctx, evt)
//	}
package track
