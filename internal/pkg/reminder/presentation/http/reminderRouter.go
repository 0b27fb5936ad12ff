package http

import (
	"github.com/gin-gonic/gin"

	"github.com/TrixIts/pickup/internal/pkg/reminder"
	"github.com/TrixIts/pickup/internal/pkg/reminder/presentation/controller"
)

// RegisterRoutes registers the job trigger endpoint under the given router group
func RegisterRoutes(g *gin.RouterGroup, orch *reminder.Orchestrator, cfg reminder.Config) {
	triggerCtl := controller.NewTriggerRemindersController(orch, cfg)

	// POST /api/v1/jobs/send-session-reminders -> run one reminder pass now
	g.POST("/jobs/send-session-reminders", triggerCtl.Handle())
}
