package usecase

import (
	"context"
	"fmt"

	chat "github.com/TrixIts/pickup/internal/pkg/chat/application/domain"
)

// JoinRoomInput validates a request to attach a user socket to a session's chat room.
type JoinRoomInput struct {
	SessionID string
	UserID    string
}

// JoinRoomUseCase ensures the user is on the session roster before joining the realtime room.
type JoinRoomUseCase struct {
	Roster RosterChecker
}

func NewJoinRoomUseCase(roster RosterChecker) *JoinRoomUseCase {
	return &JoinRoomUseCase{Roster: roster}
}

func (uc *JoinRoomUseCase) Execute(ctx context.Context, in JoinRoomInput) error {
	if in.SessionID == "" || in.UserID == "" {
		return fmt.Errorf("session_id and user_id are required")
	}

	ok, err := uc.Roster.IsOnRoster(ctx, in.SessionID, in.UserID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		return chat.ErrNotParticipant
	}
	return nil
}
