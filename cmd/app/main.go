package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/internal/config"
	"github.com/BuzzLyutic/task-store-api/internal/repo"
	"github.com/BuzzLyutic/task-store-api/internal/server"
	"github.com/BuzzLyutic/task-store-api/internal/storage"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации
	cfg := config.Load()

	snap, closeBackend, err := openSnapshotter(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer closeBackend()

	// Если снапшот не читается - стартуем с пустым хранилищем
	store := repo.Open(context.Background(), snap, logger)

	srv := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.NewRouter(store, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", srv.Addr), zap.String("backend", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}

	final := store.Snapshot()
	logger.Info("Server stopped",
		zap.Int("tasks", len(final.Tasks)),
		zap.Int("users", len(final.Users)),
	)
}

// openSnapshotter выбирает бэкенд хранения по конфигу
func openSnapshotter(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.Snapshotter, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return storage.NewFileSnapshotter(cfg.DataFile), func() {}, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		logger.Info("Successfully connected to the Database!")

		snap, err := storage.NewPostgresSnapshotter(ctx, pool, cfg.SnapshotName)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return snap, pool.Close, nil

	case config.BackendSQLite:
		snap, err := storage.NewSQLiteSnapshotter(ctx, cfg.SQLitePath, cfg.SnapshotName)
		if err != nil {
			return nil, nil, err
		}
		return snap, func() {
			if err := snap.Close(); err != nil {
				logger.Error("Failed to close sqlite", zap.Error(err))
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
