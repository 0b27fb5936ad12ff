package usecase

import (
	"context"
	"errors"
	"fmt"

	confirmation "github.com/TrixIts/pickup/internal/pkg/confirmation/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/confirmation/persistence/repository/port"
)

// GetStatusInput identifies the (session, participant) pair to read.
type GetStatusInput struct {
	SessionID string
	ProfileID string
}

// GetStatusUseCase reads the pair's confirmation state. A missing record is
// not an error: it reads as pending with both timestamps unset.
type GetStatusUseCase struct {
	Repo repository.ConfirmationRepository
}

func NewGetStatusUseCase(repo repository.ConfirmationRepository) *GetStatusUseCase {
	return &GetStatusUseCase{Repo: repo}
}

func (uc *GetStatusUseCase) Execute(ctx context.Context, in GetStatusInput) (*confirmation.Record, error) {
	if in.SessionID == "" || in.ProfileID == "" {
		return nil, fmt.Errorf("session_id and profile_id are required")
	}

	rec, err := uc.Repo.Get(ctx, in.SessionID, in.ProfileID)
	if errors.Is(err, repository.ErrNotFound) {
		return &confirmation.Record{
			SessionID: in.SessionID,
			ProfileID: in.ProfileID,
			Status:    confirmation.StatusPending,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return rec, nil
}
