package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers a single email message.
	// The Email must have From, To, Subject, and Body already set.
	// Returns the provider-assigned message ID on success.
	Send(ctx context.Context, email *Email) (string, error)
}

// BatchSender delivers one message per recipient in a single provider call.
type BatchSender interface {
	// SendBatch submits the broadcast as one batch request and returns
	// the provider's per-message results in recipient order.
	SendBatch(ctx context.Context, b Broadcast) ([]Result, error)
}
