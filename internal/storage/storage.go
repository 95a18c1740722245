package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

var (
	ErrIO     = errors.New("storage io error")
	ErrDecode = errors.New("storage decode error")
	ErrEncode = errors.New("storage encode error")
)

// Snapshotter сохраняет и читает состояние целиком.
// Ошибки не глотаются: решение о пустом старте принимает вызывающий код.
type Snapshotter interface {
	Save(ctx context.Context, db *model.Database) error
	Load(ctx context.Context) (*model.Database, error)
	Close() error
}

// Encode пишет документ вида {"tasks":{"<id>":...},"users":{"<id>":...}}
func Encode(db *model.Database) ([]byte, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: nil database", ErrEncode)
	}
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

func Decode(data []byte) (*model.Database, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecode)
	}

	var db model.Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	db.Normalize()

	// ключ в документе обязан совпадать с id записи
	for key, t := range db.Tasks {
		if t.ID != key {
			return nil, fmt.Errorf("%w: task key %d holds id %d", ErrDecode, key, t.ID)
		}
	}
	for key, u := range db.Users {
		if u.ID != key {
			return nil, fmt.Errorf("%w: user key %d holds id %d", ErrDecode, key, u.ID)
		}
	}
	return &db, nil
}
