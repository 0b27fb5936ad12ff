package usecase

import (
	"context"
	"fmt"

	chat "github.com/TrixIts/pickup/internal/pkg/chat/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/chat/persistence/repository/port"
)

// RosterChecker is the slice of the session store chat needs for membership.
// Satisfied by the session repository adapter.
type RosterChecker interface {
	IsOnRoster(ctx context.Context, sessionID string, profileID string) (bool, error)
}

// SendMessageInput carries the data needed to post a chat message.
type SendMessageInput struct {
	SessionID string
	SenderID  string
	Body      string
}

// SendMessageUseCase posts a message into a session's chat room.
// Hexagonal: depends on repository port, returns domain entity.
// One class per use case (own file).
type SendMessageUseCase struct {
	Repo   repository.ChatRepository
	Roster RosterChecker
}

func NewSendMessageUseCase(repo repository.ChatRepository, roster RosterChecker) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Roster: roster}
}

// Execute validates membership and persists a new message.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.ChatMessage, error) {
	if in.SessionID == "" || in.SenderID == "" {
		return nil, fmt.Errorf("session_id and sender_id are required")
	}

	onRoster, err := uc.Roster.IsOnRoster(ctx, in.SessionID, in.SenderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !onRoster {
		return nil, chat.ErrNotParticipant
	}

	msg, err := chat.NewChatMessage(chat.ChatMessage{
		SessionID: in.SessionID,
		SenderID:  in.SenderID,
		Body:      in.Body,
	})
	if err != nil {
		return nil, err
	}

	// Persist letting DB generate the ID
	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id
	return msg, nil
}
