package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/adapters/database/memory"
	"github.com/SscSPs/fieldflow_pm/internal/adapters/database/pgsql"
	"github.com/SscSPs/fieldflow_pm/internal/adapters/sessions"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/core/services"
	"github.com/SscSPs/fieldflow_pm/internal/handlers"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/SscSPs/fieldflow_pm/internal/platform/config"
	"github.com/SscSPs/fieldflow_pm/internal/utils"
	"github.com/SscSPs/fieldflow_pm/migrations"
	"github.com/SscSPs/fieldflow_pm/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("Connected to Redis", slog.String("addr", cfg.RedisAddr))
	}

	var registry portssvc.SessionRegistry
	if cfg.SessionBackend == config.SessionRedis {
		registry = sessions.NewRedisRegistry(redisClient, cfg.SessionTTL)
	} else {
		memRegistry := sessions.NewMemoryRegistry(cfg.SessionTTL)
		memRegistry.StartSweeper(ctx, cfg.SessionSweepInterval, logger)
		registry = memRegistry
	}
	logger.Info("Session registry ready",
		slog.String("backend", cfg.SessionBackend),
		slog.String("ttl", cfg.SessionTTL.String()))

	if cfg.SeedDemoData {
		if err := services.SeedDemoData(ctx, store); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.Info("Demo data seeded")
	}

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, redisClient)
	if err != nil {
		return err
	}

	events, err := utils.NewPosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	if err != nil {
		return err
	}
	defer events.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := handlers.NewRouter(logger, cfg, services.NewServiceContainer(store, registry), handlers.Infrastructure{
		Storage:      store,
		Redis:        redisClient,
		LoginLimiter: loginLimiter,
		Events:       events,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// openStorage returns the configured entity store and a function releasing its resources.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.Storage, func(), error) {
	if cfg.StorageDriver != config.StoragePostgres {
		logger.Info("Using in-memory storage")
		return memory.NewStore(), func() {}, nil
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := migrations.Run(cfg.DatabaseURL, logger); err != nil {
			return nil, nil, err
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnLifetime: cfg.DBMaxConnLife,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	return pgsql.NewStore(pool), func() { database.ClosePgxPool(pool, logger) }, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
