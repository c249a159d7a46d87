package store

import (
	"context"

	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) ListStock(ctx context.Context) ([]*inventory.StockItem, error) {
	return storage.Load[*inventory.StockItem](ctx, s.db, storage.Stock)
}

func (s *Store) SaveStock(ctx context.Context, items []*inventory.StockItem) error {
	return storage.Save(ctx, s.db, storage.Stock, items)
}

func (s *Store) ListArticles(ctx context.Context) ([]*inventory.Article, error) {
	return storage.Load[*inventory.Article](ctx, s.db, storage.Articles)
}

func (s *Store) SaveArticles(ctx context.Context, articles []*inventory.Article) error {
	return storage.Save(ctx, s.db, storage.Articles, articles)
}
