package service

import (
	"context"

	"github.com/BuzzLyutic/task-store-api/internal/model"
	"github.com/BuzzLyutic/task-store-api/internal/repo"
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create вставляет задачу или перезаписывает существующую с тем же id.
// Поля не валидируются.
func (s *TaskService) Create(ctx context.Context, t model.Task) (model.Task, error) {
	return s.repo.Add(ctx, t)
}

func (s *TaskService) Get(ctx context.Context, id uint32) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Update - upsert: задача с новым id будет создана.
func (s *TaskService) Update(ctx context.Context, t model.Task) (model.Task, error) {
	return s.repo.Update(ctx, t)
}

func (s *TaskService) Delete(ctx context.Context, id uint32) error {
	return s.repo.Delete(ctx, id)
}
