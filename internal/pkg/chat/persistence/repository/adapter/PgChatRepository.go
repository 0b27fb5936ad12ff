package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/TrixIts/pickup/internal/pkg/chat/application/domain"
)

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

func (r *PgChatRepository) SaveMessage(ctx context.Context, m chat.ChatMessage) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO session_chat_messages (session_id, sender_id, body, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, m.SessionID, m.SenderID, m.Body, m.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgChatRepository) GetMessagesBySession(ctx context.Context, sessionID string, limit int, offset int) ([]chat.ChatMessage, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, session_id::text, sender_id::text, body, created_at
		FROM session_chat_messages
		WHERE session_id = $1::uuid
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []chat.ChatMessage
	for rows.Next() {
		var msg chat.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.SenderID, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return msgs, nil
}
