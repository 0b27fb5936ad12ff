package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	v1 "github.com/TrixIts/pickup/cmd/api/router/v1"
	cacheAdapter "github.com/TrixIts/pickup/internal/infrastructure/cache/adapter"
	cacheport "github.com/TrixIts/pickup/internal/infrastructure/cache/port"
	"github.com/TrixIts/pickup/internal/infrastructure/database"
	queueAdapter "github.com/TrixIts/pickup/internal/infrastructure/queue/adapter"
	"github.com/TrixIts/pickup/internal/infrastructure/realtime"
	notifAdapter "github.com/TrixIts/pickup/internal/pkg/notification/adapter"
	channelport "github.com/TrixIts/pickup/internal/pkg/notification/application/port"
	subsAdapter "github.com/TrixIts/pickup/internal/pkg/notification/persistence/repository/adapter"
	"github.com/TrixIts/pickup/internal/pkg/reminder"
	reminderStore "github.com/TrixIts/pickup/internal/pkg/reminder/persistence/adapter"
	remindertask "github.com/TrixIts/pickup/internal/pkg/reminder/task"

	confirmAdapter "github.com/TrixIts/pickup/internal/pkg/confirmation/persistence/repository/adapter"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Connect to the database on startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis-backed listing cache is optional; the API degrades to uncached reads.
	var cache cacheport.Cache
	if redisCache, err := cacheAdapter.NewRedisAdapter(); err != nil {
		logger.Warn("redis cache unavailable, continuing without", "error", err)
	} else {
		cache = redisCache
		defer redisCache.Close()
	}

	// Reminder job wiring.
	cfg := reminder.DefaultConfig()
	cfg.ServiceKey = os.Getenv("SERVICE_KEY")
	cfg.CronSecret = os.Getenv("CRON_SECRET")
	cfg.BaseURL = os.Getenv("BASE_URL")

	pushCfg := notifAdapter.PushConfig{
		VAPIDPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		Subject:         os.Getenv("VAPID_SUBJECT"),
	}
	emailCfg := notifAdapter.EmailConfig{
		APIKey:  os.Getenv("RESEND_API_KEY"),
		From:    os.Getenv("EMAIL_FROM"),
		BaseURL: cfg.BaseURL,
	}

	var channels []channelport.Channel
	if pushCfg.Enabled() {
		channels = append(channels, notifAdapter.NewPushChannel(subsAdapter.NewPgSubscriptionRepository(pool), pushCfg))
	} else {
		logger.Warn("push channel disabled: VAPID keys not configured")
	}
	if emailCfg.Enabled() {
		channels = append(channels, notifAdapter.NewEmailChannel(emailCfg))
	} else {
		logger.Warn("email channel disabled: RESEND_API_KEY not configured")
	}

	orch := reminder.NewOrchestrator(
		reminderStore.NewPgReminderStore(pool),
		confirmAdapter.NewPgConfirmationRepository(pool),
		channels,
		cfg,
		logger,
	)

	rt := realtime.NewRouter()
	defer rt.Close()

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	v1.RegisterRoutes(r, pool, cache, rt, orch, cfg)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background worker and cron scheduler share the Redis instance with asynq.
	// Both are optional at boot; the trigger endpoint still works without them.
	if srv, err := queueAdapter.NewAsynqServer(); err != nil {
		logger.Warn("asynq server unavailable, scheduled reminders disabled", "error", err)
	} else {
		remindertask.RegisterDispatchRemindersTask(srv, orch)
		go func() {
			if err := srv.Run(runCtx); err != nil {
				logger.Error("asynq server stopped", "error", err)
			}
		}()

		if sch, err := queueAdapter.NewAsynqSchedulerFromEnv(); err != nil {
			logger.Warn("asynq scheduler unavailable", "error", err)
		} else {
			if err := remindertask.RegisterDispatchSchedule(sch); err != nil {
				logger.Error("failed to register reminder schedule", "error", err)
			}
			go func() {
				if err := sch.Run(runCtx); err != nil {
					logger.Error("asynq scheduler stopped", "error", err)
				}
			}()
		}
	}

	addr := ":" + envOr("PORT", "8080")
	httpSrv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info("api listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-runCtx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
