package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type txKey struct{}

type collection struct {
	Key       string `gorm:"primaryKey"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (collection) TableName() string {
	return "collections"
}

// Store persists collections in an embedded SQLite file through gorm.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&collection{}); err != nil {
		return fmt.Errorf("migrating collections table: %w", err)
	}

	return nil
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}

	return s.db.WithContext(ctx)
}

func (s *Store) Get(ctx context.Context, key storage.Collection) ([]byte, error) {
	var row collection

	err := s.conn(ctx).Where("key = ?", string(key)).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("selecting collection: %w", err)
	}

	return row.Payload, nil
}

func (s *Store) Put(ctx context.Context, key storage.Collection, payload []byte) error {
	row := collection{Key: string(key), Payload: payload, UpdatedAt: time.Now()}

	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upserting collection: %w", err)
	}

	return nil
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
