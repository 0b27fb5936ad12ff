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

// GetSessionController handles the session detail endpoint
type GetSessionController struct {
	UC *usecase.GetSessionUseCase
}

func NewGetSessionController(pool *pgxpool.Pool) *GetSessionController {
	repo := adapter.NewPgSessionRepository(pool)
	uc := usecase.NewGetSessionUseCase(repo)
	return &GetSessionController{UC: uc}
}

func (h *GetSessionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		res, err := h.UC.Execute(ctx, usecase.GetSessionInput{SessionID: sessionID})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, session.ErrSessionNotFound) {
				status = http.StatusNotFound
			} else if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session":      toSessionPayload(res.Session),
			"player_count": res.PlayerCount,
			"roster":       res.Roster,
		})
	}
}

// toSessionPayload flattens a domain session into the wire shape shared by the
// list and detail endpoints.
func toSessionPayload(s session.Session) gin.H {
	return gin.H{
		"id":           s.ID,
		"title":        s.Title,
		"sport_id":     s.SportID,
		"sport_name":   s.SportName,
		"host_id":      s.HostID,
		"location":     s.Location,
		"latitude":     s.Latitude,
		"longitude":    s.Longitude,
		"start_time":   s.StartTime,
		"player_limit": s.PlayerLimit,
		"fee":          s.Fee,
		"description":  s.Description,
		"level":        s.Level,
		"is_recurring": s.IsRecurring,
		"series_id":    s.SeriesID,
	}
}
