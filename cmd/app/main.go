package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BuzzLyutic/task-registry/internal/config"
	"github.com/BuzzLyutic/task-registry/internal/handler"
	ratelimit "github.com/BuzzLyutic/task-registry/internal/middleware"
	"github.com/BuzzLyutic/task-registry/internal/model"
	"github.com/BuzzLyutic/task-registry/internal/repo"
	"github.com/BuzzLyutic/task-registry/internal/seed"
	"github.com/BuzzLyutic/task-registry/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	tasks, err := loadSeed(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load seed tasks", zap.Error(err))
	}

	taskRepo := repo.NewTaskRepo(tasks)
	n, _ := taskRepo.Len(context.Background())
	logger.Info("Task collection ready", zap.Int("tasks", n))

	taskHandler := handler.NewTaskHandler(service.NewTaskService(taskRepo), logger)

	middlewares := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	}
	if cfg.RateLimitRPS > 0 {
		limiter := ratelimit.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		middlewares = append(middlewares, limiter.Handler)
		logger.Info("Rate limiting enabled",
			zap.Float64("rps", cfg.RateLimitRPS),
			zap.Int("burst", cfg.RateLimitBurst),
		)
	}

	srv := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewRouter(taskHandler, middlewares...),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server is listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// loadSeed reads the initial tasks once. The database, when configured,
// is only queried here and the pool is closed before serving.
func loadSeed(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]model.Task, error) {
	if cfg.SeedDatabaseURL == "" {
		logger.Info("Loading seed from file", zap.String("path", cfg.SeedFile))
		return seed.NewFileSource(cfg.SeedFile).Load(ctx)
	}

	pool, err := pgxpool.New(ctx, cfg.SeedDatabaseURL)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	logger.Info("Loading seed from the Database")
	return seed.NewPostgresSource(pool).Load(ctx)
}
