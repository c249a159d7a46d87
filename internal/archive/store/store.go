package store

import (
	"context"

	"github.com/MrJamesThe3rd/bistro/internal/archive"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) ListArchives(ctx context.Context) ([]*archive.MonthlyArchive, error) {
	return storage.Load[*archive.MonthlyArchive](ctx, s.db, storage.MonthlyArchives)
}

func (s *Store) SaveArchives(ctx context.Context, archives []*archive.MonthlyArchive) error {
	return storage.Save(ctx, s.db, storage.MonthlyArchives, archives)
}
