package repo

import (
	"context"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/internal/model"
	"github.com/BuzzLyutic/task-store-api/internal/storage"
)

// Open читает последний снапшот. Если он отсутствует, не читается или битый,
// хранилище стартует пустым, а не роняет запуск.
func Open(ctx context.Context, snap storage.Snapshotter, logger *zap.Logger) *Store {
	db, err := snap.Load(ctx)
	if err != nil {
		logger.Warn("failed to load snapshot, starting empty", zap.Error(err))
		db = model.NewDatabase()
	} else {
		logger.Info("snapshot loaded",
			zap.Int("tasks", len(db.Tasks)),
			zap.Int("users", len(db.Users)),
		)
	}
	return NewStore(db, snap, logger)
}
