package chat

import (
	"errors"
	"strings"
	"time"
)

// Domain-level errors for session chat behaviors
var (
	ErrNotParticipant = errors.New("chat: sender is not on the session roster")
	ErrEmptyMessage   = errors.New("chat: empty message body")
)

// ChatMessage is an immutable log entry in a session's chat room.
type ChatMessage struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	SenderID  string    `db:"sender_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

// NewChatMessage validates and normalizes a message before persistence.
func NewChatMessage(m ChatMessage) (*ChatMessage, error) {
	if m.SessionID == "" || m.SenderID == "" {
		return nil, errors.New("chat: session_id and sender_id are required")
	}

	m.Body = strings.TrimSpace(m.Body)
	if m.Body == "" {
		return nil, ErrEmptyMessage
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	return &m, nil
}
