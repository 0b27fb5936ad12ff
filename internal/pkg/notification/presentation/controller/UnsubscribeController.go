package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrixIts/pickup/internal/pkg/notification/persistence/repository/adapter"
	repository "github.com/TrixIts/pickup/internal/pkg/notification/persistence/repository/port"
)

// UnsubscribeController removes a push subscription by endpoint.
type UnsubscribeController struct {
	Repo repository.SubscriptionRepository
}

func NewUnsubscribeController(pool *pgxpool.Pool) *UnsubscribeController {
	return &UnsubscribeController{Repo: adapter.NewPgSubscriptionRepository(pool)}
}

type unsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

func (h *UnsubscribeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req unsubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.Repo.DeleteByEndpoint(ctx, req.Endpoint); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
