package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
	"github.com/TrixIts/pickup/internal/pkg/reminder"
	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
)

// PgReminderStore resolves due sessions and their rosters in one query,
// grouping roster rows per session in memory.
type PgReminderStore struct {
	pool *pgxpool.Pool
}

func NewPgReminderStore(pool *pgxpool.Pool) *PgReminderStore {
	return &PgReminderStore{pool: pool}
}

// Ensure interface compliance at compile time
var _ reminder.Store = (*PgReminderStore)(nil)

func (r *PgReminderStore) ListDueSessions(ctx context.Context, from, to time.Time) ([]reminder.DueSession, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgReminderStore: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT s.id::text, s.title, COALESCE(sp.name, ''), s.location, s.start_time,
		       p.profile_id::text, COALESCE(pr.first_name, ''), COALESCE(pr.email, '')
		FROM pickup_sessions s
		JOIN pickup_session_players p ON p.session_id = s.id
		LEFT JOIN sports sp ON sp.id = s.sport_id
		LEFT JOIN profiles pr ON pr.id = p.profile_id
		WHERE s.start_time >= $1 AND s.start_time <= $2
		ORDER BY s.start_time ASC, s.id, p.joined_at ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		due     []reminder.DueSession
		current *reminder.DueSession
	)
	for rows.Next() {
		var (
			s session.Session
			p notification.Recipient
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.SportName, &s.Location, &s.StartTime,
			&p.ProfileID, &p.FirstName, &p.Email); err != nil {
			return nil, err
		}
		if current == nil || current.Session.ID != s.ID {
			due = append(due, reminder.DueSession{Session: s})
			current = &due[len(due)-1]
		}
		current.Participants = append(current.Participants, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return due, nil
}
