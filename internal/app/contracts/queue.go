package contracts

import "context"

// WebhookQueueService decouples webhook acknowledgement from processing.
// Events are acknowledged to the gateway as soon as they are enqueued and a
// background worker applies them afterwards.
type WebhookQueueService interface {
	Publish(ctx context.Context, body []byte) error
	Consume(ctx context.Context, handler func(ctx context.Context, body []byte) error) error
	Close() error
}
