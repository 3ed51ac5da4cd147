package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"safesignal/internal/api"
	"safesignal/internal/config"
	"safesignal/internal/notify"
	"safesignal/internal/redis"
	"safesignal/internal/service"
	"safesignal/internal/storage/postgres"
	"safesignal/internal/workers"
	"safesignal/pkg/logger"
)

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	AlertQueue  *redis.AlertQueue
	AlertSender *workers.ContactAlertSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	zoneCache := redis.NewZoneCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")

	engine := service.NewRiskEngine(service.EmptyZonePolicy(cfg.Zones.EmptyPolicy), logger)
	dispatcher := notify.NewDispatcher(logger, cfg.Push, notify.DefaultTemplates())

	safetySvc := service.NewSafetyService(
		engine,
		storage.Zone,
		zoneCache,
		cfg.Zones.CacheTTL,
		storage.Event,
		storage.Profile,
		dispatcher,
		alertQueue,
		logger,
	)
	zoneAdminSvc := service.NewZoneAdminService(storage.ZoneAdmin, zoneCache, logger)
	statsSvc := service.NewStatsService(storage.Stat)

	srv := service.NewService(zoneAdminSvc, safetySvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	alertSender := workers.NewContactAlertSender(logger, cfg.Contacts, alertQueue)
	logger.Info("Initialized server")

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		AlertQueue:  alertQueue,
		AlertSender: alertSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
