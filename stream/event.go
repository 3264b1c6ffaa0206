// Package stream provides a real-time broker for job lifecycle transitions.
// It bridges the ext hook system to observers (a UI, a logger, a test) via
// topic-based pub/sub.
package stream

import (
	"encoding/json"
	"time"
)

// EventType identifies the kind of lifecycle transition.
type EventType string

const (
	EventJobCreated  EventType = "job.created"
	EventJobStarted  EventType = "job.started"
	EventJobResults  EventType = "job.results"
	EventJobFinished EventType = "job.finished"
	EventJobFailed   EventType = "job.failed"
)

// Event is the envelope sent to subscribers on a topic channel.
type Event struct {
	// Type identifies the lifecycle transition.
	Type EventType `json:"type"`

	// Timestamp is when the event was emitted.
	Timestamp time.Time `json:"ts"`

	// Topic is the channel this event was published on.
	Topic string `json:"topic"`

	// Data is the event-specific payload.
	Data json.RawMessage `json:"data"`
}

// JobEventData is the payload for job lifecycle transitions.
type JobEventData struct {
	JobID       string `json:"job_id"`
	Dataset     string `json:"dataset,omitempty"`
	Running     string `json:"running"`
	Status      string `json:"status"`
	ResultCount int    `json:"result_count,omitempty"`
	ElapsedMs   int64  `json:"elapsed_ms,omitempty"`
}
