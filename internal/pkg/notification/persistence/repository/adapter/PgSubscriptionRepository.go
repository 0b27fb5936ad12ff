package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
)

type PgSubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSubscriptionRepository(pool *pgxpool.Pool) *PgSubscriptionRepository {
	return &PgSubscriptionRepository{pool: pool}
}

func (r *PgSubscriptionRepository) Upsert(ctx context.Context, sub notification.PushSubscription) error {
	if r == nil || r.pool == nil {
		return errors.New("PgSubscriptionRepository: nil pool")
	}
	createdAt := sub.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO push_subscriptions (user_id, endpoint, p256dh, auth, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5)
		ON CONFLICT (endpoint)
		DO UPDATE SET user_id = EXCLUDED.user_id,
		              p256dh = EXCLUDED.p256dh,
		              auth = EXCLUDED.auth
	`, sub.UserID, sub.Endpoint, sub.P256dh, sub.Auth, createdAt)
	return err
}

func (r *PgSubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]notification.PushSubscription, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSubscriptionRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, endpoint, p256dh, auth, created_at
		FROM push_subscriptions
		WHERE user_id = $1::uuid
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []notification.PushSubscription
	for rows.Next() {
		var s notification.PushSubscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Endpoint, &s.P256dh, &s.Auth, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return subs, nil
}

func (r *PgSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgSubscriptionRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx,
		"DELETE FROM push_subscriptions WHERE endpoint = $1",
		endpoint)
	return err
}
