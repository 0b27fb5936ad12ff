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

// UpdateSessionController handles host edits to a session
type UpdateSessionController struct {
	UC *usecase.UpdateSessionUseCase
}

func NewUpdateSessionController(pool *pgxpool.Pool) *UpdateSessionController {
	repo := adapter.NewPgSessionRepository(pool)
	uc := usecase.NewUpdateSessionUseCase(repo)
	return &UpdateSessionController{UC: uc}
}

type updateSessionRequest struct {
	ProfileID   string   `json:"profile_id" binding:"required"`
	Title       *string  `json:"title"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	StartTime   *string  `json:"start_time"`
	PlayerLimit *int     `json:"player_limit"`
	Fee         *float64 `json:"fee"`
	Description *string  `json:"description"`
	Level       *string  `json:"level"`
}

func (h *UpdateSessionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
			return
		}

		var req updateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.UpdateSessionInput{
			SessionID:   sessionID,
			ProfileID:   req.ProfileID,
			Title:       req.Title,
			Location:    req.Location,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			PlayerLimit: req.PlayerLimit,
			Fee:         req.Fee,
			Description: req.Description,
			Level:       req.Level,
		}
		if req.StartTime != nil {
			t, err := time.Parse(time.RFC3339, *req.StartTime)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be RFC 3339"})
				return
			}
			in.StartTime = &t
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		updated, err := h.UC.Execute(ctx, in)
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, session.ErrSessionNotFound):
				status = http.StatusNotFound
			case errors.Is(err, session.ErrNotHost):
				status = http.StatusForbidden
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, toSessionPayload(*updated))
	}
}
