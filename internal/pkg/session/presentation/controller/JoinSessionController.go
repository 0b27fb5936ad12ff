package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
	"github.com/TrixIts/pickup/internal/pkg/session/application/usecase"
	"github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/adapter"
)

// JoinSessionController handles the join endpoint
type JoinSessionController struct {
	UC *usecase.JoinSessionUseCase
}

func NewJoinSessionController(pool *pgxpool.Pool) *JoinSessionController {
	repo := adapter.NewPgSessionRepository(pool)
	uc := usecase.NewJoinSessionUseCase(repo)
	return &JoinSessionController{UC: uc}
}

type joinSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	ProfileID string `json:"profile_id" binding:"required"`
}

func (h *JoinSessionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req joinSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.UC.Execute(ctx, usecase.JoinSessionInput{
			SessionID: req.SessionID,
			ProfileID: req.ProfileID,
		})
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true})
		case errors.Is(err, session.ErrAlreadyJoined):
			// Joining twice is a no-op, not a failure.
			c.JSON(http.StatusOK, gin.H{"message": "already joined"})
		case errors.Is(err, session.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, session.ErrSessionFull), errors.Is(err, session.ErrSkillTooLow):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrPersistence):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
	}
}
