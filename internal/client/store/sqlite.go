package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bloodbank/internal/client/models"
	"github.com/dmitrijs2005/bloodbank/internal/dbx"
)

// SQLiteStore implements Store on the slots table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a store bound to db. The schema must already be
// migrated (see client.InitDatabase).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func readSlot(ctx context.Context, q dbx.DBTX, kind models.Kind) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, kind.SlotName()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot[%s]: %w", kind.SlotName(), err)
	}
	return value, nil
}

func writeSlot(ctx context.Context, q dbx.DBTX, kind models.Kind, data []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, kind.SlotName(), data)
	if err != nil {
		return fmt.Errorf("failed to write slot[%s]: %w", kind.SlotName(), err)
	}
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context, kind models.Kind) ([]byte, error) {
	return readSlot(ctx, s.db, kind)
}

func (s *SQLiteStore) Write(ctx context.Context, kind models.Kind, data []byte) error {
	return writeSlot(ctx, s.db, kind, data)
}

// Update runs the read-modify-write in a single transaction.
func (s *SQLiteStore) Update(ctx context.Context, kind models.Kind, fn UpdateFunc) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := readSlot(ctx, tx, kind)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return writeSlot(ctx, tx, kind, next)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots`); err != nil {
		return fmt.Errorf("failed to clear slots: %w", err)
	}
	return nil
}
