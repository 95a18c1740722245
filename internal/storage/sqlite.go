package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

// SQLiteSnapshotter хранит документ одной текстовой строкой в файле sqlite.
type SQLiteSnapshotter struct {
	db   *sql.DB
	name string
}

func NewSQLiteSnapshotter(ctx context.Context, path, name string) (*SQLiteSnapshotter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	// sqlite пишет из одного соединения
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS store_snapshots (
			name       TEXT PRIMARY KEY,
			body       TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %w", ErrIO, err)
	}

	return &SQLiteSnapshotter{
		db:   db,
		name: name,
	}, nil
}

func (s *SQLiteSnapshotter) Save(ctx context.Context, db *model.Database) error {
	data, err := Encode(db)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO store_snapshots (name, body, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP
	`, s.name, string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func (s *SQLiteSnapshotter) Load(ctx context.Context) (*model.Database, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM store_snapshots WHERE name = ?`, s.name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: snapshot %q not found", ErrIO, s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Decode([]byte(body))
}

func (s *SQLiteSnapshotter) Close() error {
	return s.db.Close()
}
