package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

// FileSnapshotter хранит документ в одном файле по фиксированному пути.
//
// Save перезаписывает файл на месте, без временного файла и rename.
// Падение процесса во время записи может оставить файл обрезанным.
type FileSnapshotter struct {
	path string
}

func NewFileSnapshotter(path string) *FileSnapshotter {
	return &FileSnapshotter{path: path}
}

func (f *FileSnapshotter) Path() string {
	return f.path
}

func (f *FileSnapshotter) Save(ctx context.Context, db *model.Database) error {
	data, err := Encode(db)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func (f *FileSnapshotter) Load(ctx context.Context) (*model.Database, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Decode(data)
}

func (f *FileSnapshotter) Close() error {
	return nil
}
