package usecase

import (
	"context"
	"fmt"
	"time"

	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/port"
)

// JoinSessionInput validates a request to add a player to a session roster.
type JoinSessionInput struct {
	SessionID string
	ProfileID string
}

// JoinSessionUseCase enforces the join gates: duplicate membership, player
// capacity, and the skill-level ordinal requirement.
type JoinSessionUseCase struct {
	Repo repository.SessionRepository
}

func NewJoinSessionUseCase(repo repository.SessionRepository) *JoinSessionUseCase {
	return &JoinSessionUseCase{Repo: repo}
}

func (uc *JoinSessionUseCase) Execute(ctx context.Context, in JoinSessionInput) error {
	if in.SessionID == "" || in.ProfileID == "" {
		return fmt.Errorf("session_id and profile_id are required")
	}

	s, err := uc.Repo.GetSession(ctx, in.SessionID)
	if err != nil {
		if err == session.ErrSessionNotFound {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	joined, err := uc.Repo.IsOnRoster(ctx, in.SessionID, in.ProfileID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if joined {
		return session.ErrAlreadyJoined
	}

	count, err := uc.Repo.CountPlayers(ctx, in.SessionID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !s.HasCapacity(count) {
		return session.ErrSessionFull
	}

	level, err := uc.Repo.GetPlayerLevel(ctx, in.ProfileID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !session.MeetsRequirement(level, s.Level) {
		return session.ErrSkillTooLow
	}

	entry := session.RosterEntry{
		SessionID: in.SessionID,
		ProfileID: in.ProfileID,
		Role:      session.RolePlayer,
		JoinedAt:  time.Now().UTC(),
	}
	if err := uc.Repo.AddRosterEntry(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
