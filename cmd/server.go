package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "nelo-tasks.com/nelo-tasks/internal/configs"
	httpapi "nelo-tasks.com/nelo-tasks/internal/http"
	"nelo-tasks.com/nelo-tasks/internal/notify"
	repository "nelo-tasks.com/nelo-tasks/internal/repositories"
	"nelo-tasks.com/nelo-tasks/internal/services"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the NELO task API and the notification scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logger := config.NewLogger(cfg.Env)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		db := config.New(cfg.DatabaseDSN)

		snapshot := repository.NewSnapshotWriter(
			cfg.SnapshotPath,
			time.Duration(cfg.SnapshotDebounceMS)*time.Millisecond,
			logger,
		)
		defer snapshot.Close()

		taskRepo := repository.NewTaskRepository(db, logger, snapshot)
		sessionRepo := repository.NewSessionRepository(redisClient)

		taskService := services.NewTaskService(taskRepo, logger)
		sessionService := services.NewSessionService(
			sessionRepo,
			time.Duration(cfg.SessionTTLMinutes)*time.Minute,
			logger,
		)

		sender := notify.NewEmailSender(logger, time.Duration(cfg.SendLatencyMS)*time.Millisecond)
		scheduler := services.NewSchedulerService(taskService, sender, logger)
		defer scheduler.Stop()

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService, sessionService, scheduler, httpapi.NotifyConfig{
			Period:      time.Duration(cfg.NotifyIntervalSeconds) * time.Second,
			SendTimeout: time.Duration(cfg.SendTimeoutSeconds) * time.Second,
		})
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			logger.Info().Str("addr", cfg.AppURL).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info().Err(err).Msg("server stopped")
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)
		scheduler.Stop()

		logger.Info().Msg("HTTP server and scheduler shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
