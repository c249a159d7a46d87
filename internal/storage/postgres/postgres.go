package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

const schema = `
	CREATE TABLE IF NOT EXISTS collections (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type txKey struct{}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the collections table when it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating collections table: %w", err)
	}

	return nil
}

func (s *Store) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}

	return s.db
}

func (s *Store) Get(ctx context.Context, key storage.Collection) ([]byte, error) {
	var payload []byte

	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE key = $1`, string(key),
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("selecting collection: %w", err)
	}

	return payload, nil
}

func (s *Store) Put(ctx context.Context, key storage.Collection, payload []byte) error {
	query := `
		INSERT INTO collections (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	if _, err := s.conn(ctx).ExecContext(ctx, query, string(key), payload); err != nil {
		return fmt.Errorf("upserting collection: %w", err)
	}

	return nil
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
