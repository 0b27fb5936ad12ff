package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrixIts/pickup/internal/pkg/notification/presentation/controller"
)

// RegisterRoutes registers push subscription endpoints under the given router group
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	subCtl := controller.NewSubscribeController(pool)
	unsubCtl := controller.NewUnsubscribeController(pool)

	// POST /api/v1/push/subscribe -> upsert a device subscription (keyed by endpoint)
	g.POST("/push/subscribe", subCtl.Handle())

	// DELETE /api/v1/push/subscribe -> drop a device subscription
	g.DELETE("/push/subscribe", unsubCtl.Handle())
}
