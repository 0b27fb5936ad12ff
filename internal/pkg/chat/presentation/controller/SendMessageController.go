package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/TrixIts/pickup/internal/pkg/chat/application/domain"
	"github.com/TrixIts/pickup/internal/pkg/chat/application/usecase"
	"github.com/TrixIts/pickup/internal/pkg/chat/persistence/repository/adapter"
	sessionAdapter "github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/adapter"
)

// SendMessageController handles the send-message endpoint only (one controller per endpoint)
type SendMessageController struct {
	UC *usecase.SendMessageUseCase
}

func NewSendMessageController(pool *pgxpool.Pool) *SendMessageController {
	repo := adapter.NewPgChatRepository(pool)
	roster := sessionAdapter.NewPgSessionRepository(pool)
	uc := usecase.NewSendMessageUseCase(repo, roster)
	return &SendMessageController{UC: uc}
}

// sendMessageRequest is the DTO for the HTTP request body
type sendMessageRequest struct {
	SenderID string `json:"sender_id" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// Handle returns a gin handler that posts a message into a session's chat
func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
			return
		}

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			SessionID: sessionID,
			SenderID:  req.SenderID,
			Body:      req.Body,
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, chat.ErrNotParticipant) {
				status = http.StatusForbidden
			} else if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         msg.ID,
			"session_id": msg.SessionID,
			"sender_id":  msg.SenderID,
			"body":       msg.Body,
			"created_at": msg.CreatedAt,
		})
	}
}
