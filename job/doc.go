// Package job defines the job entity and the pure reducer that projects
// channel events onto a normalized snapshot of all tracked jobs.
//
// # Job Entity
//
// A [Job] is one submitted analysis request, tracked through a two-level
// state machine. [Phase] is the coarse lifecycle:
//
//	creating → running → done
//
// and [Status] refines it into creating, in_progress, success, or error.
// The two always move together; the four legal pairs are checked by
// [Job.Consistent].
//
// # Reducer
//
// [Reduce] is a pure function (snapshot, event) → snapshot. It never
// errors, never blocks, and never mutates its input: duplicate creations
// and events for unknown ids are absorbed as silent no-ops, and event
// kinds it does not recognize leave the snapshot untouched. It is a
// best-effort projector of whatever the channel delivers — it does not
// enforce transition ordering, so the event source is responsible for
// per-job delivery order.
package job
