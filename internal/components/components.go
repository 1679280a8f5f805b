package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Yorfad/PROVIAL-sub003/internal/api"
	"github.com/Yorfad/PROVIAL-sub003/internal/config"
	"github.com/Yorfad/PROVIAL-sub003/internal/metrics"
	"github.com/Yorfad/PROVIAL-sub003/internal/notify"
	"github.com/Yorfad/PROVIAL-sub003/internal/redis"
	"github.com/Yorfad/PROVIAL-sub003/internal/service"
	"github.com/Yorfad/PROVIAL-sub003/internal/storage/postgres"
	"github.com/Yorfad/PROVIAL-sub003/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	EventQueue *redis.EventQueue
	Hub        *notify.Hub
	Dispatcher *notify.Dispatcher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Running migrations")
	if err := postgres.Migrate(cfg); err != nil {
		logger.Error("Failed to run migrations", slog.Any("error", err))
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}
	metrics.RegisterPgxPoolMetrics(storage.Pool)

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	eventQueue := redis.NewEventQueue(redisClient.Client, "situaciones:eventos")
	cache := redis.NewSituacionCache(redisClient)

	hub := notify.NewHub(logger)
	dispatcher := notify.NewDispatcher(logger, eventQueue, hub)
	notifier := notify.NewQueueNotifier(logger, eventQueue)

	locks := service.NewLocks()
	situacionSvc := service.NewSituacionService(
		logger, storage.Situaciones, storage.Asignaciones, storage.Catalogo, cache, notifier, locks)
	asignacionSvc := service.NewAsignacionService(
		logger, storage.Situaciones, storage.Asignaciones, storage.Actualizaciones, cache, notifier, locks)
	catalogoSvc := service.NewCatalogoService(storage.Catalogo)

	svc := service.NewService(situacionSvc, asignacionSvc, catalogoSvc)

	httpServer := api.NewServer(cfg, logger, svc, hub)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		EventQueue: eventQueue,
		Hub:        hub,
		Dispatcher: dispatcher,
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
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
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
