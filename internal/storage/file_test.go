package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

func TestFileSnapshotter_RoundTrip(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		db   *model.Database
	}{
		{name: "empty database", db: model.NewDatabase()},
		{name: "tasks and users", db: sampleDatabase()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewFileSnapshotter(filepath.Join(t.TempDir(), "database.json"))

			require.NoError(t, snap.Save(ctx, tt.db))
			loaded, err := snap.Load(ctx)
			require.NoError(t, err)

			assert.Equal(t, tt.db.Tasks, loaded.Tasks)
			assert.Equal(t, tt.db.Users, loaded.Users)
		})
	}
}

func TestFileSnapshotter_Restart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database.json")

	db := model.NewDatabase()
	db.AddTask(model.Task{ID: 1, Name: "buy milk", Completed: false})
	require.NoError(t, NewFileSnapshotter(path).Save(ctx, db))

	// новый экземпляр, как после перезапуска процесса
	loaded, err := NewFileSnapshotter(path).Load(ctx)
	require.NoError(t, err)

	task, ok := loaded.GetTask(1)
	require.True(t, ok)
	assert.Equal(t, model.Task{ID: 1, Name: "buy milk", Completed: false}, task)
}

func TestFileSnapshotter_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database.json")
	snap := NewFileSnapshotter(path)

	require.NoError(t, snap.Save(ctx, sampleDatabase()))
	require.NoError(t, snap.Save(ctx, model.NewDatabase()))

	loaded, err := snap.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Tasks)
	assert.Empty(t, loaded.Users)
}

func TestFileSnapshotter_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "database.json")
	snap := NewFileSnapshotter(path)

	require.NoError(t, snap.Save(context.Background(), sampleDatabase()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileSnapshotter_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		snap := NewFileSnapshotter(filepath.Join(t.TempDir(), "nope.json"))
		_, err := snap.Load(ctx)
		assert.ErrorIs(t, err, ErrIO)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "database.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tasks": {"1": `), 0o644))

		_, err := NewFileSnapshotter(path).Load(ctx)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("save into a file instead of a dir", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		snap := NewFileSnapshotter(filepath.Join(blocker, "database.json"))
		err := snap.Save(ctx, sampleDatabase())
		assert.ErrorIs(t, err, ErrIO)
	})

	t.Run("path is a directory", func(t *testing.T) {
		snap := NewFileSnapshotter(t.TempDir())
		_, err := snap.Load(ctx)
		assert.ErrorIs(t, err, ErrIO)
	})
}
