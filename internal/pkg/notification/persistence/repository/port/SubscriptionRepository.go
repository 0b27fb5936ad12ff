package repository

import (
	"context"

	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
)

// SubscriptionRepository defines persistence operations for push subscriptions.
type SubscriptionRepository interface {
	// Upsert stores the subscription, keyed by endpoint to avoid duplicates.
	Upsert(ctx context.Context, sub notification.PushSubscription) error

	// ListByUser returns all device subscriptions for one user.
	ListByUser(ctx context.Context, userID string) ([]notification.PushSubscription, error)

	// DeleteByEndpoint removes a subscription whose endpoint is permanently gone.
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}
