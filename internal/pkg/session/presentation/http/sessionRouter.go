package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/TrixIts/pickup/internal/infrastructure/cache/port"
	"github.com/TrixIts/pickup/internal/pkg/session/presentation/controller"
)

// RegisterRoutes registers session-related HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache) {
	createCtl := controller.NewCreateSessionController(pool)
	listCtl := controller.NewListSessionsController(pool, cache)
	getCtl := controller.NewGetSessionController(pool)
	updateCtl := controller.NewUpdateSessionController(pool)
	joinCtl := controller.NewJoinSessionController(pool)

	// GET /api/v1/pickup -> list upcoming sessions (series collapsed)
	g.GET("/pickup", listCtl.Handle())

	// POST /api/v1/pickup -> create a session (recurring requests fan out)
	g.POST("/pickup", createCtl.Handle())

	// GET /api/v1/pickup/:sessionId -> session detail with roster
	g.GET("/pickup/:sessionId", getCtl.Handle())

	// PATCH /api/v1/pickup/:sessionId -> host edits
	g.PATCH("/pickup/:sessionId", updateCtl.Handle())

	// POST /api/v1/pickup/join -> join a session roster
	g.POST("/pickup/join", joinCtl.Handle())
}
