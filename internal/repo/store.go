package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/internal/model"
	"github.com/BuzzLyutic/task-store-api/internal/storage"
)

var ErrorNotFound = errors.New("not found")

var (
	_ TaskRepository = (*TaskRepo)(nil)
	_ UserRepository = (*UserRepo)(nil)
)

// Store - общее состояние сервиса. Один мьютекс на все операции, чтение тоже,
// изменение сохраняется до того, как мьютекс отпущен.
type Store struct {
	mu     sync.Mutex
	db     *model.Database
	snap   storage.Snapshotter
	logger *zap.Logger
}

func NewStore(db *model.Database, snap storage.Snapshotter, logger *zap.Logger) *Store {
	if db == nil {
		db = model.NewDatabase()
	}
	db.Normalize()
	return &Store{
		db:     db,
		snap:   snap,
		logger: logger,
	}
}

func (s *Store) Tasks() *TaskRepo {
	return &TaskRepo{store: s}
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{store: s}
}

// Snapshot возвращает копию текущего состояния
func (s *Store) Snapshot() *model.Database {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Clone()
}

func (s *Store) read(fn func(db *model.Database)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.db)
}

// mutate применяет изменение и сразу сохраняет весь снапшот под тем же локом.
// Изменение в памяти не откатывается, если сохранение упало.
// Отмена запроса не прерывает запись: начатая операция доходит до конца.
func (s *Store) mutate(ctx context.Context, fn func(db *model.Database)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.db)
	return s.persist(context.WithoutCancel(ctx))
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.snap.Save(ctx, s.db); err != nil {
		s.logger.Error("failed to save snapshot", zap.Error(err))
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

type TaskRepo struct {
	store *Store
}

func (r *TaskRepo) Add(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.store.mutate(ctx, func(db *model.Database) {
		db.AddTask(t)
	})
	return t, err
}

func (r *TaskRepo) Get(ctx context.Context, id uint32) (model.Task, error) {
	var (
		t  model.Task
		ok bool
	)
	r.store.read(func(db *model.Database) {
		t, ok = db.GetTask(id)
	})
	if !ok {
		return t, ErrorNotFound
	}
	return t, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	r.store.read(func(db *model.Database) {
		tasks = db.ListTasks()
	})
	return tasks, nil
}

func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.store.mutate(ctx, func(db *model.Database) {
		db.UpdateTask(t)
	})
	return t, err
}

// Delete сохраняет снапшот даже если задачи не было
func (r *TaskRepo) Delete(ctx context.Context, id uint32) error {
	return r.store.mutate(ctx, func(db *model.Database) {
		db.DeleteTask(id)
	})
}

type UserRepo struct {
	store *Store
}

func (r *UserRepo) Add(ctx context.Context, u model.User) (model.User, error) {
	err := r.store.mutate(ctx, func(db *model.Database) {
		db.AddUser(u)
	})
	return u, err
}

func (r *UserRepo) Get(ctx context.Context, id uint32) (model.User, error) {
	var (
		u  model.User
		ok bool
	)
	r.store.read(func(db *model.Database) {
		u, ok = db.GetUser(id)
	})
	if !ok {
		return u, ErrorNotFound
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	r.store.read(func(db *model.Database) {
		users = db.ListUsers()
	})
	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, u model.User) (model.User, error) {
	err := r.store.mutate(ctx, func(db *model.Database) {
		db.UpdateUser(u)
	})
	return u, err
}

func (r *UserRepo) Delete(ctx context.Context, id uint32) error {
	return r.store.mutate(ctx, func(db *model.Database) {
		db.DeleteUser(id)
	})
}
