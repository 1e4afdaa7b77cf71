package shared

import (
	"context"

	"travel-broker/internal/domain/event"
	"travel-broker/internal/domain/notification"
)

type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}

// NotificationSender delivers requests and may drop duplicates it has already delivered.
// The returned error covers transport-wide failures; per-request failures are in the results.
type NotificationSender interface {
	SendAll(ctx context.Context, reqs []notification.Request) ([]notification.DeliveryResult, error)
}
