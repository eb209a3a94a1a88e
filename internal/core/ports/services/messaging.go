package services

import "context"

// MessageBus is the at-least-once publish/subscribe capability the processor
// announces committed transactions on. Connection lifecycle and queue
// topology belong to the implementation, not the callers.
type MessageBus interface {
	// Publish serializes message as JSON and sends it to the named queue.
	Publish(ctx context.Context, queue string, message any) error

	// Subscribe consumes the named queue, invoking handler for every
	// delivery. Handler errors are logged by the implementation; they do not
	// stop consumption.
	Subscribe(ctx context.Context, queue string, handler func(ctx context.Context, body []byte) error) error

	Close() error
}
