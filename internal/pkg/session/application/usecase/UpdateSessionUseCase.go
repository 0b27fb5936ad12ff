package usecase

import (
	"context"
	"fmt"
	"time"

	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/port"
)

// UpdateSessionInput carries host edits to an existing session. Nil pointers
// mean "leave unchanged".
type UpdateSessionInput struct {
	SessionID   string
	ProfileID   string // must be the host
	Title       *string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	StartTime   *time.Time
	PlayerLimit *int
	Fee         *float64
	Description *string
	Level       *string
}

// UpdateSessionUseCase applies host-only edits to a session.
type UpdateSessionUseCase struct {
	Repo repository.SessionRepository
}

func NewUpdateSessionUseCase(repo repository.SessionRepository) *UpdateSessionUseCase {
	return &UpdateSessionUseCase{Repo: repo}
}

func (uc *UpdateSessionUseCase) Execute(ctx context.Context, in UpdateSessionInput) (*session.Session, error) {
	if in.SessionID == "" || in.ProfileID == "" {
		return nil, fmt.Errorf("session_id and profile_id are required")
	}

	s, err := uc.Repo.GetSession(ctx, in.SessionID)
	if err != nil {
		if err == session.ErrSessionNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if s.HostID != in.ProfileID {
		return nil, session.ErrNotHost
	}

	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Location != nil {
		s.Location = *in.Location
	}
	if in.Latitude != nil {
		s.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		s.Longitude = in.Longitude
	}
	if in.StartTime != nil {
		s.StartTime = *in.StartTime
	}
	if in.PlayerLimit != nil {
		s.PlayerLimit = *in.PlayerLimit
	}
	if in.Fee != nil {
		s.Fee = *in.Fee
	}
	if in.Description != nil {
		s.Description = in.Description
	}
	if in.Level != nil {
		s.Level = session.ParseSkillLevel(*in.Level)
	}

	if err := uc.Repo.UpdateSession(ctx, *s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return s, nil
}
