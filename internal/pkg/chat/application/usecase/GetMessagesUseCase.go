package usecase

import (
	"context"
	"fmt"

	chat "github.com/TrixIts/pickup/internal/pkg/chat/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/chat/persistence/repository/port"
)

// GetMessagesInput carries parameters to fetch a session's chat history.
type GetMessagesInput struct {
	SessionID string
	Limit     int
	Offset    int
}

// GetMessagesUseCase fetches chat history for a given session.
type GetMessagesUseCase struct {
	Repo repository.ChatRepository
}

func NewGetMessagesUseCase(repo repository.ChatRepository) *GetMessagesUseCase {
	return &GetMessagesUseCase{Repo: repo}
}

// Execute returns messages for the session honoring limit/offset
func (uc *GetMessagesUseCase) Execute(ctx context.Context, in GetMessagesInput) ([]chat.ChatMessage, error) {
	if in.SessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	msgs, err := uc.Repo.GetMessagesBySession(ctx, in.SessionID, in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
