package repository

import (
	"context"

	chat "github.com/TrixIts/pickup/internal/pkg/chat/application/domain"
)

// ChatRepository defines persistence operations for session chat.
// Membership checks belong to the session roster, not here.
type ChatRepository interface {
	SaveMessage(ctx context.Context, m chat.ChatMessage) (string, error)
	GetMessagesBySession(ctx context.Context, sessionID string, limit int, offset int) ([]chat.ChatMessage, error)
}
