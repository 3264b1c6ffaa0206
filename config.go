package libertem

// Config holds configuration for the tracker.
type Config struct {
	// HistoryDepth is the number of previous snapshots retained for Undo.
	// Zero disables history.
	HistoryDepth int

	// BufferSize is the per-subscriber event buffer size.
	BufferSize int

	// SubscriberCredits is the initial flow-control credit balance
	// granted to new subscribers.
	SubscriberCredits int64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HistoryDepth:      0,
		BufferSize:        256,
		SubscriberCredits: 1000,
	}
}
