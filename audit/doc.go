// Package audit is a tracker extension that records every job lifecycle
// transition as a structured audit entry through the [Recorder] interface.
//
// The extension assigns severities (info for normal progress, critical for
// terminal failures) and carries the job's state at the time of the
// transition, so a recorded trail replays the lifecycle without access to
// the snapshots themselves.
//
// [Memory] is the built-in bounded in-memory recorder, useful as an action
// log during debugging:
//
//	trail := audit.NewMemory(512)
//	t := track.New(track.WithExtension(audit.New(trail)))
//
// # Selective filtering
//
//	audit.New(trail,
//	    audit.WithActions(
//	        audit.ActionJobFinished,
//	        audit.ActionJobErrored,
//	    ),
//	)
package audit
