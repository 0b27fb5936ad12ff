package usecase

import (
	"context"
	"fmt"

	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/port"
)

// GetSessionInput wraps the session identifier to fetch.
type GetSessionInput struct {
	SessionID string
}

// GetSessionResult bundles the session with its current roster size so the
// detail view can render capacity without a second round trip.
type GetSessionResult struct {
	Session     session.Session
	PlayerCount int
	Roster      []session.RosterEntry
}

// GetSessionUseCase fetches one session with roster details.
type GetSessionUseCase struct {
	Repo repository.SessionRepository
}

func NewGetSessionUseCase(repo repository.SessionRepository) *GetSessionUseCase {
	return &GetSessionUseCase{Repo: repo}
}

func (uc *GetSessionUseCase) Execute(ctx context.Context, in GetSessionInput) (*GetSessionResult, error) {
	if in.SessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}

	s, err := uc.Repo.GetSession(ctx, in.SessionID)
	if err != nil {
		if err == session.ErrSessionNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	roster, err := uc.Repo.ListRoster(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &GetSessionResult{
		Session:     *s,
		PlayerCount: len(roster),
		Roster:      roster,
	}, nil
}
