package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	confirmation "github.com/TrixIts/pickup/internal/pkg/confirmation/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/confirmation/persistence/repository/port"
)

type PgConfirmationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConfirmationRepository(pool *pgxpool.Pool) *PgConfirmationRepository {
	return &PgConfirmationRepository{pool: pool}
}

func (r *PgConfirmationRepository) Get(ctx context.Context, sessionID string, profileID string) (*confirmation.Record, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConfirmationRepository: nil pool")
	}
	var rec confirmation.Record
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, session_id::text, profile_id::text, status, confirmed_at, reminder_sent_at
		FROM session_confirmations
		WHERE session_id = $1::uuid AND profile_id = $2::uuid
	`, sessionID, profileID).Scan(
		&rec.ID, &rec.SessionID, &rec.ProfileID, &rec.Status, &rec.ConfirmedAt, &rec.ReminderSentAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PgConfirmationRepository) SetStatus(ctx context.Context, sessionID string, profileID string, status confirmation.Status, confirmedAt *time.Time) error {
	if r == nil || r.pool == nil {
		return errors.New("PgConfirmationRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO session_confirmations (session_id, profile_id, status, confirmed_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		ON CONFLICT (session_id, profile_id)
		DO UPDATE SET status = EXCLUDED.status,
		              confirmed_at = EXCLUDED.confirmed_at
	`, sessionID, profileID, status, confirmedAt)
	return err
}

func (r *PgConfirmationRepository) MarkReminderSent(ctx context.Context, sessionID string, profileID string, at time.Time) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgConfirmationRepository: nil pool")
	}
	// COALESCE keeps an existing marker; the stamp is write-once.
	// xmax = 0 distinguishes a fresh insert from a conflict update.
	var created bool
	err := r.pool.QueryRow(ctx, `
		INSERT INTO session_confirmations (session_id, profile_id, status, reminder_sent_at)
		VALUES ($1::uuid, $2::uuid, 'pending', $3)
		ON CONFLICT (session_id, profile_id)
		DO UPDATE SET reminder_sent_at = COALESCE(session_confirmations.reminder_sent_at, EXCLUDED.reminder_sent_at)
		RETURNING (xmax = 0)
	`, sessionID, profileID, at).Scan(&created)
	return created, err
}
