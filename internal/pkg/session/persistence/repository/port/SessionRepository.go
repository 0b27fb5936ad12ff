package repository

import (
	"context"
	"time"

	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
)

// SessionRepository defines persistence operations for the session domain.
// Roster entries live here too; they have no life of their own outside a session.
type SessionRepository interface {
	CreateSession(ctx context.Context, s session.Session) (string, error)
	GetSession(ctx context.Context, id string) (*session.Session, error)
	UpdateSession(ctx context.Context, s session.Session) error

	// ListUpcoming returns sessions starting at or after from, soonest first.
	ListUpcoming(ctx context.Context, from time.Time) ([]session.Session, error)

	AddRosterEntry(ctx context.Context, e session.RosterEntry) error
	IsOnRoster(ctx context.Context, sessionID string, profileID string) (bool, error)
	CountPlayers(ctx context.Context, sessionID string) (int, error)
	ListRoster(ctx context.Context, sessionID string) ([]session.RosterEntry, error)

	// GetPlayerLevel reads the profile's self-reported skill level.
	// Profiles without one report SkillAny.
	GetPlayerLevel(ctx context.Context, profileID string) (session.SkillLevel, error)
}
