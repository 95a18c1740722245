package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS store_snapshots (
		name       TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// PostgresSnapshotter хранит документ одной строкой в store_snapshots.
type PostgresSnapshotter struct {
	pool *pgxpool.Pool
	name string
}

func NewPostgresSnapshotter(ctx context.Context, pool *pgxpool.Pool, name string) (*PostgresSnapshotter, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("%w: create schema: %w", ErrIO, err)
	}
	return &PostgresSnapshotter{
		pool: pool,
		name: name,
	}, nil
}

func (p *PostgresSnapshotter) Save(ctx context.Context, db *model.Database) error {
	data, err := Encode(db)
	if err != nil {
		return err
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO store_snapshots (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()
	`, p.name, string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func (p *PostgresSnapshotter) Load(ctx context.Context) (*model.Database, error) {
	var body string
	err := p.pool.QueryRow(ctx, `
		SELECT body::text FROM store_snapshots WHERE name = $1
	`, p.name).Scan(&body)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: snapshot %q not found", ErrIO, p.name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Decode([]byte(body))
}

// Close не закрывает пул: им владеет main.
func (p *PostgresSnapshotter) Close() error {
	return nil
}
