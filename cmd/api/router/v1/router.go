package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/TrixIts/pickup/internal/infrastructure/cache/port"
	"github.com/TrixIts/pickup/internal/infrastructure/realtime"
	chatHTTP "github.com/TrixIts/pickup/internal/pkg/chat/presentation/http"
	confirmationHTTP "github.com/TrixIts/pickup/internal/pkg/confirmation/presentation/http"
	notificationHTTP "github.com/TrixIts/pickup/internal/pkg/notification/presentation/http"
	"github.com/TrixIts/pickup/internal/pkg/reminder"
	reminderHTTP "github.com/TrixIts/pickup/internal/pkg/reminder/presentation/http"
	sessionHTTP "github.com/TrixIts/pickup/internal/pkg/session/presentation/http"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1
func RegisterRoutes(
	r *gin.Engine,
	pool *pgxpool.Pool,
	cache cacheport.Cache,
	rt *realtime.Router,
	orch *reminder.Orchestrator,
	cfg reminder.Config,
) {
	v1 := r.Group("/api/v1")

	// Pass the DB connection and shared infrastructure down to each context's HTTP layer
	sessionHTTP.RegisterRoutes(v1, pool, cache)
	confirmationHTTP.RegisterRoutes(v1, pool)
	notificationHTTP.RegisterRoutes(v1, pool)
	chatHTTP.RegisterRoutes(v1, pool, rt)
	reminderHTTP.RegisterRoutes(v1, orch, cfg)
}
