package webhook

import "context"

// EventStore remembers processed webhook event IDs. The transport delivers
// at-least-once, so a redelivered event must become a no-op — but only once
// the original delivery actually went through; a failed delivery must stay
// retryable.
type EventStore interface {
	// Seen reports whether the event ID was already processed successfully.
	Seen(ctx context.Context, eventID string) (bool, error)
	// MarkProcessed records the event ID after successful processing.
	MarkProcessed(ctx context.Context, eventID string) error
}
