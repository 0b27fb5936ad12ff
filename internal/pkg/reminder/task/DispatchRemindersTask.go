package task

import (
	"context"
	"time"

	qport "github.com/TrixIts/pickup/internal/infrastructure/queue/port"
	"github.com/TrixIts/pickup/internal/pkg/reminder"
)

// DispatchRemindersTaskType is the queue task name for one reminder pass.
const DispatchRemindersTaskType = "reminder:dispatch"

// DispatchSchedule runs the pass hourly; the 24h lead-time window makes the
// exact cadence uncritical as long as it is well under the window width.
const DispatchSchedule = "@every 1h"

// RegisterDispatchRemindersTask binds the reminder pass to the queue server.
// The task carries no payload; each run derives its window from the clock.
func RegisterDispatchRemindersTask(srv qport.Server, orch *reminder.Orchestrator) {
	srv.Register(DispatchRemindersTaskType, func(ctx context.Context, t qport.Task) error {
		// Bound the whole pass; per-delivery budgets are enforced inside.
		ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()

		// A run that completed with per-pair errors still succeeded; only a
		// failed session query reaches asynq's retry policy.
		_, err := orch.Execute(ctx)
		return err
	})
}

// RegisterDispatchSchedule enters the recurring dispatch into the scheduler.
func RegisterDispatchSchedule(sch qport.Scheduler) error {
	_, err := sch.Register(DispatchSchedule,
		qport.Task{Type: DispatchRemindersTaskType},
		qport.EnqueueOption{Queue: "reminders", MaxRetry: 1},
	)
	return err
}
