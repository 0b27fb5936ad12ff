package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrixIts/pickup/internal/pkg/chat/application/usecase"
	"github.com/TrixIts/pickup/internal/pkg/chat/persistence/repository/adapter"
)

// GetMessagesController handles the chat history endpoint
type GetMessagesController struct {
	UC *usecase.GetMessagesUseCase
}

func NewGetMessagesController(pool *pgxpool.Pool) *GetMessagesController {
	repo := adapter.NewPgChatRepository(pool)
	uc := usecase.NewGetMessagesUseCase(repo)
	return &GetMessagesController{UC: uc}
}

func (h *GetMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
			return
		}

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		msgs, err := h.UC.Execute(ctx, usecase.GetMessagesInput{
			SessionID: sessionID,
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"messages": msgs})
	}
}
