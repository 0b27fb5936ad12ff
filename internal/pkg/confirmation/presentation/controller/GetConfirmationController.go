package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrixIts/pickup/internal/pkg/confirmation/application/usecase"
	"github.com/TrixIts/pickup/internal/pkg/confirmation/persistence/repository/adapter"
)

// GetConfirmationController handles the attendance status read endpoint
type GetConfirmationController struct {
	UC *usecase.GetStatusUseCase
}

func NewGetConfirmationController(pool *pgxpool.Pool) *GetConfirmationController {
	repo := adapter.NewPgConfirmationRepository(pool)
	uc := usecase.NewGetStatusUseCase(repo)
	return &GetConfirmationController{UC: uc}
}

func (h *GetConfirmationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		profileID := c.Query("profile_id")
		if sessionID == "" || profileID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and profile_id are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		rec, err := h.UC.Execute(ctx, usecase.GetStatusInput{
			SessionID: sessionID,
			ProfileID: profileID,
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":           rec.Status,
			"confirmed_at":     rec.ConfirmedAt,
			"reminder_sent_at": rec.ReminderSentAt,
		})
	}
}
