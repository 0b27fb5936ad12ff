package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	confirmation "github.com/TrixIts/pickup/internal/pkg/confirmation/application/domain"
	"github.com/TrixIts/pickup/internal/pkg/confirmation/application/usecase"
	"github.com/TrixIts/pickup/internal/pkg/confirmation/persistence/repository/adapter"
	sessionAdapter "github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/adapter"
)

// UpdateConfirmationController handles the attendance update endpoint
// One controller per endpoint

type UpdateConfirmationController struct {
	UC *usecase.UpdateStatusUseCase
}

func NewUpdateConfirmationController(pool *pgxpool.Pool) *UpdateConfirmationController {
	repo := adapter.NewPgConfirmationRepository(pool)
	roster := sessionAdapter.NewPgSessionRepository(pool)
	uc := usecase.NewUpdateStatusUseCase(repo, roster)
	return &UpdateConfirmationController{UC: uc}
}

type updateConfirmationRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	ProfileID string `json:"profile_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

func (h *UpdateConfirmationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateConfirmationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		status, err := h.UC.Execute(ctx, usecase.UpdateStatusInput{
			SessionID: req.SessionID,
			ProfileID: req.ProfileID,
			Status:    req.Status,
		})
		if err != nil {
			httpStatus := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrNotOnRoster):
				httpStatus = http.StatusForbidden
			case errors.Is(err, usecase.ErrPersistence):
				httpStatus = http.StatusInternalServerError
			}
			c.JSON(httpStatus, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  status,
			"message": statusMessage(status),
		})
	}
}

func statusMessage(status confirmation.Status) string {
	switch status {
	case confirmation.StatusConfirmed:
		return "Great! You're confirmed for this session."
	case confirmation.StatusDeclined:
		return "No worries! We'll miss you this time."
	default:
		return "Your attendance status has been updated."
	}
}
