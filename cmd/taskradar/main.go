package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/xxxsen/taskradar/internal/config"
	"github.com/xxxsen/taskradar/internal/db"
	"github.com/xxxsen/taskradar/internal/handler"
	"github.com/xxxsen/taskradar/internal/middleware"
	"github.com/xxxsen/taskradar/internal/notify"
	"github.com/xxxsen/taskradar/internal/oauth"
	"github.com/xxxsen/taskradar/internal/reminder"
	"github.com/xxxsen/taskradar/internal/repo"
	"github.com/xxxsen/taskradar/internal/schedule"
	"github.com/xxxsen/taskradar/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "taskradar",
		Short: "taskradar backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run taskradar server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(conn); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, conn)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, conn *sql.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.Bool("reminder_enabled", cfg.Reminder.Enabled),
	)

	userRepo := repo.NewUserRepo(conn)
	oauthRepo := repo.NewOAuthRepo(conn)
	taskRepo := repo.NewTaskRepo(conn)
	deviceRepo := repo.NewDeviceStateRepo(conn)
	notificationRepo := repo.NewNotificationRepo(conn)

	jwtTTL := time.Hour * time.Duration(cfg.JWTTTLHours)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), jwtTTL)
	client := &http.Client{Timeout: 10 * time.Second}
	oauthProviders := map[string]oauth.Provider{}
	if cfg.OAuth.Google.ClientID != "" {
		provider, err := oauth.NewProvider("google", oauth.ProviderArgs{Config: oauth.ProviderConfig{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
			Scopes:       cfg.OAuth.Google.Scopes,
		}, Client: client})
		if err == nil {
			oauthProviders["google"] = provider
		}
	}
	oauthService := service.NewOAuthService(userRepo, oauthRepo, []byte(cfg.JWTSecret), jwtTTL, oauthProviders)
	taskService := service.NewTaskService(taskRepo)
	settingsService := service.NewSettingsService(deviceRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	deps := handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService),
		OAuth:         handler.NewOAuthHandler(oauthService),
		Tasks:         handler.NewTaskHandler(taskService),
		Settings:      handler.NewSettingsHandler(settingsService),
		Notifications: handler.NewNotificationHandler(notificationService),
		JWTSecret:     []byte(cfg.JWTSecret),
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	if cfg.Reminder.Enabled {
		sinks := []notify.Sink{notify.NewStoreSink(notificationRepo)}
		if cfg.Reminder.Webhook.URL != "" {
			sinks = append(sinks, notify.NewWebhookSink(cfg.Reminder.Webhook.URL, cfg.Reminder.Webhook.Token, client))
		}
		dispatcher := reminder.NewDispatcher(notify.NewFanout(sinks...))
		job := reminder.NewJob(deviceRepo, deviceRepo, deviceRepo, taskRepo, dispatcher, cfg.Reminder.RadiusMeters)
		online := schedule.NetworkAvailable(cfg.Reminder.ProbeAddr, time.Duration(cfg.Reminder.ProbeTimeout)*time.Millisecond)
		if err := scheduler.AddJob(job, cfg.Reminder.Cron, online); err != nil {
			return fmt.Errorf("schedule reminder job: %w", err)
		}
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))
	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
