package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/port"
)

// CreateSessionInput carries the required data to schedule a new pickup session.
// A recurring request fans out into weekly instances sharing one series id.
type CreateSessionInput struct {
	Title       string
	SportID     string
	HostID      string
	Location    string
	Latitude    *float64
	Longitude   *float64
	StartTime   time.Time
	PlayerLimit int
	Fee         float64
	Description *string
	Level       string
	IsRecurring bool
}

// CreateSessionUseCase handles creation of sessions and host enrollment.
// Hexagonal: depends on repository port only.
// One class per use case (own file).
type CreateSessionUseCase struct {
	Repo repository.SessionRepository
}

func NewCreateSessionUseCase(repo repository.SessionRepository) *CreateSessionUseCase {
	return &CreateSessionUseCase{Repo: repo}
}

// Execute persists one session, or four weekly instances for a recurring
// schedule, enrolling the host as roster owner in each. The created sessions
// are returned soonest first.
func (uc *CreateSessionUseCase) Execute(ctx context.Context, in CreateSessionInput) ([]session.Session, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if in.StartTime.IsZero() {
		return nil, fmt.Errorf("start_time is required")
	}

	now := time.Now().UTC()
	template := session.Session{
		Title:       in.Title,
		SportID:     in.SportID,
		HostID:      in.HostID,
		Location:    in.Location,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		StartTime:   in.StartTime,
		PlayerLimit: in.PlayerLimit,
		Fee:         in.Fee,
		Description: in.Description,
		Level:       session.ParseSkillLevel(in.Level),
		IsRecurring: in.IsRecurring,
		CreatedAt:   now,
	}

	occurrences := 1
	if in.IsRecurring {
		seriesID := uuid.NewString()
		template.SeriesID = &seriesID
		occurrences = session.DefaultSeriesOccurrences
	}

	created := make([]session.Session, 0, occurrences)
	for _, inst := range session.ExpandSeries(template, occurrences, 7) {
		id, err := uc.Repo.CreateSession(ctx, inst)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		inst.ID = id

		if in.HostID != "" {
			entry := session.RosterEntry{
				SessionID: id,
				ProfileID: in.HostID,
				Role:      session.RoleOwner,
				JoinedAt:  now,
			}
			if err := uc.Repo.AddRosterEntry(ctx, entry); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
			}
		}
		created = append(created, inst)
	}

	return created, nil
}
