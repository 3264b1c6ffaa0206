package libertem

import "errors"

var (
	// Tracker errors.
	ErrTrackerClosed = errors.New("libertem: tracker closed")
	ErrNilEvent      = errors.New("libertem: nil event")

	// Channel message errors.
	ErrUnknownMessage = errors.New("libertem: unknown channel message type")
	ErrBadMessage     = errors.New("libertem: malformed channel message")
)
