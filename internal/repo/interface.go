package repo

import (
	"context"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Add(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, id uint32) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, id uint32) error
}

// UserRepository определяет интерфейс для работы с пользователями
type UserRepository interface {
	Add(ctx context.Context, u model.User) (model.User, error)
	Get(ctx context.Context, id uint32) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u model.User) (model.User, error)
	Delete(ctx context.Context, id uint32) error
}
