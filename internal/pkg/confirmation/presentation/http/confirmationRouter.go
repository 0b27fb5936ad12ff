package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrixIts/pickup/internal/pkg/confirmation/presentation/controller"
)

// RegisterRoutes registers confirmation HTTP endpoints under the given router group
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	updateCtl := controller.NewUpdateConfirmationController(pool)
	getCtl := controller.NewGetConfirmationController(pool)

	// POST /api/v1/pickup/confirm -> participant attendance update
	g.POST("/pickup/confirm", updateCtl.Handle())

	// GET /api/v1/pickup/confirm?session_id=&profile_id= -> current status
	g.GET("/pickup/confirm", getCtl.Handle())
}
