package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrixIts/pickup/internal/infrastructure/realtime"
	"github.com/TrixIts/pickup/internal/pkg/chat/presentation/controller"
)

// RegisterRoutes registers chat endpoints under the given router group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, router *realtime.Router) {
	sendCtl := controller.NewSendMessageController(pool)
	historyCtl := controller.NewGetMessagesController(pool)
	socketCtl := controller.NewChatSocketController(pool, router)

	// POST /api/v1/pickup/:sessionId/chat -> post a message over HTTP
	g.POST("/pickup/:sessionId/chat", sendCtl.Handle())

	// GET /api/v1/pickup/:sessionId/chat -> paged chat history
	g.GET("/pickup/:sessionId/chat", historyCtl.Handle())

	// GET /api/v1/chat/ws?user_id=... -> realtime socket (join/leave/message frames)
	g.GET("/chat/ws", socketCtl.Handle())
}
