package service

import (
	"context"

	"github.com/BuzzLyutic/task-store-api/internal/model"
	"github.com/BuzzLyutic/task-store-api/internal/repo"
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(repo repo.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, u model.User) (model.User, error) {
	return s.repo.Add(ctx, u)
}

func (s *UserService) Get(ctx context.Context, id uint32) (model.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, u model.User) (model.User, error) {
	return s.repo.Update(ctx, u)
}

func (s *UserService) Delete(ctx context.Context, id uint32) error {
	return s.repo.Delete(ctx, id)
}
