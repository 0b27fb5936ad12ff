package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TrixIts/pickup/internal/pkg/reminder"
)

// TriggerRemindersController exposes the reminder pass as an HTTP-invoked job.
// Callers authorize either with the privileged service credential in the
// Authorization header or with the shared cron secret header; anything else
// is rejected before any processing.
type TriggerRemindersController struct {
	Orch *reminder.Orchestrator
	Cfg  reminder.Config
}

func NewTriggerRemindersController(orch *reminder.Orchestrator, cfg reminder.Config) *TriggerRemindersController {
	return &TriggerRemindersController{Orch: orch, Cfg: cfg}
}

func (h *TriggerRemindersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.authorized(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		sum, err := h.Orch.Execute(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":                 true,
			"sessions_processed":      sum.SessionsProcessed,
			"push_notifications_sent": sum.PushSent,
			"emails_sent":             sum.EmailsSent,
			"confirmations_updated":   sum.ConfirmationsUpdated,
			"skipped_already_sent":    sum.Skipped,
			"errors":                  sum.Errors,
		})
	}
}

func (h *TriggerRemindersController) authorized(c *gin.Context) bool {
	if h.Cfg.ServiceKey != "" && strings.Contains(c.GetHeader("Authorization"), h.Cfg.ServiceKey) {
		return true
	}
	if h.Cfg.CronSecret != "" && c.GetHeader("X-Cron-Secret") == h.Cfg.CronSecret {
		return true
	}
	return false
}
