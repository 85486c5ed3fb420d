package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/patient-portal/internal/config"
	"github.com/jwalitptl/patient-portal/internal/dashboard"
	"github.com/jwalitptl/patient-portal/internal/handler"
	dashboardHandler "github.com/jwalitptl/patient-portal/internal/handler/dashboard"
	"github.com/jwalitptl/patient-portal/internal/middleware"
	"github.com/jwalitptl/patient-portal/internal/notify"
	"github.com/jwalitptl/patient-portal/internal/router"
	"github.com/jwalitptl/patient-portal/internal/store"
	memorystore "github.com/jwalitptl/patient-portal/internal/store/memory"
	postgresstore "github.com/jwalitptl/patient-portal/internal/store/postgres"
	redisstore "github.com/jwalitptl/patient-portal/internal/store/redis"
	"github.com/jwalitptl/patient-portal/pkg/logger"
	"github.com/jwalitptl/patient-portal/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Server.LogLevel),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})
	log.Logger = *appLogger.Zerolog()

	backend, err := newBackend(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("failed to initialize storage")
	}
	defer backend.Close()

	m := metrics.NewMetrics("portal", "dashboard")
	records := store.NewRecords(store.Instrument(backend, m))

	var notifier notify.Notifier = notify.NewLogNotifier()
	if cfg.SMTP.Host != "" {
		notifier = notify.NewEmailNotifier(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	dashboardSvc := dashboard.NewService(records, notifier, m)

	r := router.NewRouter(
		dashboardHandler.NewHandler(dashboardSvc),
		handler.NewHandler(),
		router.Config{
			RateLimit:     rate.Limit(cfg.API.RateLimit),
			RateBurst:     cfg.API.RateBurst,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "portal",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("backend", cfg.Storage.Backend).Msg("starting portal")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newBackend(cfg config.StorageConfig) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return redisstore.NewStore(redisstore.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   cfg.Redis.MaxRetries,
			RetryBackoff: cfg.Redis.RetryBackoff,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			KeyPrefix:    cfg.Redis.KeyPrefix,
		})
	case config.BackendPostgres:
		db, err := postgresstore.NewDB(postgresstore.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Name:     cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			return nil, err
		}
		return postgresstore.NewStore(db)
	case config.BackendMemory, "":
		return memorystore.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
