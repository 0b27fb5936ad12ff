package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/TrixIts/pickup/internal/infrastructure/cache/port"
	"github.com/TrixIts/pickup/internal/pkg/session/application/usecase"
	"github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/adapter"
)

// ListSessionsController handles the upcoming sessions listing endpoint
type ListSessionsController struct {
	UC *usecase.ListUpcomingUseCase
}

func NewListSessionsController(pool *pgxpool.Pool, cache cacheport.Cache) *ListSessionsController {
	repo := adapter.NewPgSessionRepository(pool)
	uc := usecase.NewListUpcomingUseCase(repo, cache)
	return &ListSessionsController{UC: uc}
}

func (h *ListSessionsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		sessions, err := h.UC.Execute(ctx, time.Now().UTC())
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		payload := make([]gin.H, 0, len(sessions))
		for _, s := range sessions {
			item := toSessionPayload(s)
			// Weekday label for recurring cards, e.g. "Saturday".
			if s.IsRecurring {
				item["recurring_day"] = s.StartTime.Weekday().String()
			}
			payload = append(payload, item)
		}
		c.JSON(http.StatusOK, payload)
	}
}
