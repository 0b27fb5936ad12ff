package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	notification "github.com/TrixIts/pickup/internal/pkg/notification/application/domain"
	"github.com/TrixIts/pickup/internal/pkg/notification/persistence/repository/adapter"
	repository "github.com/TrixIts/pickup/internal/pkg/notification/persistence/repository/port"
)

// SubscribeController stores a browser push subscription for a user.
// The request mirrors the PushSubscription JSON shape browsers produce.
type SubscribeController struct {
	Repo repository.SubscriptionRepository
}

func NewSubscribeController(pool *pgxpool.Pool) *SubscribeController {
	return &SubscribeController{Repo: adapter.NewPgSubscriptionRepository(pool)}
}

type subscribeRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Subscription struct {
		Endpoint string `json:"endpoint" binding:"required"`
		Keys     struct {
			P256dh string `json:"p256dh" binding:"required"`
			Auth   string `json:"auth" binding:"required"`
		} `json:"keys"`
	} `json:"subscription" binding:"required"`
}

func (h *SubscribeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.Repo.Upsert(ctx, notification.PushSubscription{
			UserID:   req.UserID,
			Endpoint: req.Subscription.Endpoint,
			P256dh:   req.Subscription.Keys.P256dh,
			Auth:     req.Subscription.Keys.Auth,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
