package store

import (
	"context"

	"github.com/MrJamesThe3rd/bistro/internal/matching"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) ListAliases(ctx context.Context) ([]*matching.Alias, error) {
	return storage.Load[*matching.Alias](ctx, s.db, storage.ArticleAliases)
}

func (s *Store) SaveAliases(ctx context.Context, aliases []*matching.Alias) error {
	return storage.Save(ctx, s.db, storage.ArticleAliases, aliases)
}
