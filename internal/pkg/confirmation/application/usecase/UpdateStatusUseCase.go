package usecase

import (
	"context"
	"fmt"
	"time"

	confirmation "github.com/TrixIts/pickup/internal/pkg/confirmation/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/confirmation/persistence/repository/port"
)

// RosterChecker is the slice of the session store this use case needs.
// Satisfied by the session repository adapter.
type RosterChecker interface {
	IsOnRoster(ctx context.Context, sessionID string, profileID string) (bool, error)
}

// UpdateStatusInput carries a participant-driven attendance update.
type UpdateStatusInput struct {
	SessionID string
	ProfileID string
	Status    string
}

// UpdateStatusUseCase validates and persists an attendance transition.
// Participants may move between the four states at will; ConfirmedAt is
// stamped only when the new status is confirmed.
type UpdateStatusUseCase struct {
	Repo   repository.ConfirmationRepository
	Roster RosterChecker
}

func NewUpdateStatusUseCase(repo repository.ConfirmationRepository, roster RosterChecker) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{Repo: repo, Roster: roster}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, in UpdateStatusInput) (confirmation.Status, error) {
	if in.SessionID == "" || in.ProfileID == "" {
		return "", fmt.Errorf("session_id and profile_id are required")
	}

	status, err := confirmation.ParseStatus(in.Status)
	if err != nil {
		return "", err
	}

	onRoster, err := uc.Roster.IsOnRoster(ctx, in.SessionID, in.ProfileID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !onRoster {
		return "", ErrNotOnRoster
	}

	rec := confirmation.Record{SessionID: in.SessionID, ProfileID: in.ProfileID}
	rec.ApplyStatus(status, time.Now())

	if err := uc.Repo.SetStatus(ctx, in.SessionID, in.ProfileID, rec.Status, rec.ConfirmedAt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return status, nil
}
