package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
)

type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) CreateSession(ctx context.Context, s session.Session) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgSessionRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO pickup_sessions (
			title, sport_id, host_id, location, latitude, longitude,
			start_time, player_limit, fee, description, level, is_recurring, series_id, created_at
		) VALUES ($1, NULLIF($2, '')::uuid, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::uuid, $14)
		RETURNING id::text
	`, s.Title, s.SportID, s.HostID, s.Location, s.Latitude, s.Longitude,
		s.StartTime, s.PlayerLimit, s.Fee, s.Description, s.Level, s.IsRecurring, s.SeriesID, s.CreatedAt,
	).Scan(&id)
	return id, err
}

func (r *PgSessionRepository) GetSession(ctx context.Context, id string) (*session.Session, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSessionRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT s.id::text, s.title, COALESCE(s.sport_id::text, ''), COALESCE(sp.name, ''), COALESCE(s.host_id::text, ''),
		       s.location, s.latitude, s.longitude, s.start_time, s.player_limit, s.fee,
		       s.description, s.level, s.is_recurring, s.series_id::text, s.created_at
		FROM pickup_sessions s
		LEFT JOIN sports sp ON sp.id = s.sport_id
		WHERE s.id = $1::uuid
	`, id)
	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PgSessionRepository) UpdateSession(ctx context.Context, s session.Session) error {
	if r == nil || r.pool == nil {
		return errors.New("PgSessionRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE pickup_sessions
		SET title = $2, location = $3, latitude = $4, longitude = $5,
		    start_time = $6, player_limit = $7, fee = $8, description = $9, level = $10
		WHERE id = $1::uuid
	`, s.ID, s.Title, s.Location, s.Latitude, s.Longitude,
		s.StartTime, s.PlayerLimit, s.Fee, s.Description, s.Level)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

func (r *PgSessionRepository) ListUpcoming(ctx context.Context, from time.Time) ([]session.Session, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSessionRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT s.id::text, s.title, COALESCE(s.sport_id::text, ''), COALESCE(sp.name, ''), COALESCE(s.host_id::text, ''),
		       s.location, s.latitude, s.longitude, s.start_time, s.player_limit, s.fee,
		       s.description, s.level, s.is_recurring, s.series_id::text, s.created_at
		FROM pickup_sessions s
		LEFT JOIN sports sp ON sp.id = s.sport_id
		WHERE s.start_time >= $1
		ORDER BY s.start_time ASC
	`, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return sessions, nil
}

func (r *PgSessionRepository) AddRosterEntry(ctx context.Context, e session.RosterEntry) error {
	if r == nil || r.pool == nil {
		return errors.New("PgSessionRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO pickup_session_players (session_id, profile_id, role, joined_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		ON CONFLICT (session_id, profile_id) DO NOTHING
	`, e.SessionID, e.ProfileID, e.Role, e.JoinedAt)
	return err
}

func (r *PgSessionRepository) IsOnRoster(ctx context.Context, sessionID string, profileID string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgSessionRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pickup_session_players
			WHERE session_id = $1::uuid AND profile_id = $2::uuid
		)
	`, sessionID, profileID).Scan(&exists)
	return exists, err
}

func (r *PgSessionRepository) CountPlayers(ctx context.Context, sessionID string) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgSessionRepository: nil pool")
	}
	var n int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM pickup_session_players WHERE session_id = $1::uuid",
		sessionID,
	).Scan(&n)
	return n, err
}

func (r *PgSessionRepository) ListRoster(ctx context.Context, sessionID string) ([]session.RosterEntry, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSessionRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT session_id::text, profile_id::text, role, joined_at
		FROM pickup_session_players
		WHERE session_id = $1::uuid
		ORDER BY joined_at ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []session.RosterEntry
	for rows.Next() {
		var e session.RosterEntry
		if err := rows.Scan(&e.SessionID, &e.ProfileID, &e.Role, &e.JoinedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return entries, nil
}

func (r *PgSessionRepository) GetPlayerLevel(ctx context.Context, profileID string) (session.SkillLevel, error) {
	if r == nil || r.pool == nil {
		return session.SkillAny, errors.New("PgSessionRepository: nil pool")
	}
	var level *string
	err := r.pool.QueryRow(ctx,
		"SELECT skill_level FROM profiles WHERE id = $1::uuid",
		profileID,
	).Scan(&level)
	if err != nil {
		// An absent profile reads as unrated; any other failure must surface.
		if errors.Is(err, pgx.ErrNoRows) {
			return session.SkillAny, nil
		}
		return session.SkillAny, err
	}
	if level == nil {
		return session.SkillAny, nil
	}
	return session.ParseSkillLevel(*level), nil
}

// scanSession reads one session row in the canonical column order.
func scanSession(row pgx.Row) (*session.Session, error) {
	var (
		s        session.Session
		desc     *string
		seriesID *string
		level    string
	)
	if err := row.Scan(&s.ID, &s.Title, &s.SportID, &s.SportName, &s.HostID,
		&s.Location, &s.Latitude, &s.Longitude, &s.StartTime, &s.PlayerLimit, &s.Fee,
		&desc, &level, &s.IsRecurring, &seriesID, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Description = desc
	s.SeriesID = seriesID
	s.Level = session.ParseSkillLevel(level)
	return &s, nil
}
