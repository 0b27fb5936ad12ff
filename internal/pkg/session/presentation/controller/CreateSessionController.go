package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrixIts/pickup/internal/pkg/session/application/usecase"
	"github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/adapter"
)

// CreateSessionController handles the session creation endpoint
// One controller per endpoint

type CreateSessionController struct {
	UC *usecase.CreateSessionUseCase
}

func NewCreateSessionController(pool *pgxpool.Pool) *CreateSessionController {
	repo := adapter.NewPgSessionRepository(pool)
	uc := usecase.NewCreateSessionUseCase(repo)
	return &CreateSessionController{UC: uc}
}

type createSessionRequest struct {
	Title       string   `json:"title" binding:"required"`
	SportID     string   `json:"sport_id" binding:"required"`
	HostID      string   `json:"host_id" binding:"required"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	StartTime   string   `json:"start_time" binding:"required"`
	PlayerLimit int      `json:"player_limit"`
	Fee         float64  `json:"fee"`
	Description *string  `json:"description"`
	Level       string   `json:"level"`
	IsRecurring bool     `json:"is_recurring"`
}

func (h *CreateSessionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		startTime, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be RFC 3339"})
			return
		}

		in := usecase.CreateSessionInput{
			Title:       req.Title,
			SportID:     req.SportID,
			HostID:      req.HostID,
			Location:    req.Location,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			StartTime:   startTime,
			PlayerLimit: req.PlayerLimit,
			Fee:         req.Fee,
			Description: req.Description,
			Level:       req.Level,
			IsRecurring: req.IsRecurring,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		created, err := h.UC.Execute(ctx, in)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// The first (nearest) instance drives the client redirect; the rest of
		// a recurring series is reported by id only.
		first := created[0]
		ids := make([]string, 0, len(created))
		for _, s := range created {
			ids = append(ids, s.ID)
		}
		c.JSON(http.StatusCreated, gin.H{
			"id":           first.ID,
			"title":        first.Title,
			"start_time":   first.StartTime,
			"series_id":    first.SeriesID,
			"is_recurring": first.IsRecurring,
			"created_ids":  ids,
		})
	}
}
