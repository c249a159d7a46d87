package store

import (
	"context"

	"github.com/MrJamesThe3rd/bistro/internal/sales"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) ListSales(ctx context.Context) ([]*sales.Sale, error) {
	return storage.Load[*sales.Sale](ctx, s.db, storage.Sales)
}

func (s *Store) SaveSales(ctx context.Context, all []*sales.Sale) error {
	return storage.Save(ctx, s.db, storage.Sales, all)
}

func (s *Store) ListHistory(ctx context.Context) ([]*sales.Sale, error) {
	return storage.Load[*sales.Sale](ctx, s.db, storage.SalesHistory)
}

func (s *Store) AppendHistory(ctx context.Context, archived []*sales.Sale) error {
	history, err := s.ListHistory(ctx)
	if err != nil {
		return err
	}

	return storage.Save(ctx, s.db, storage.SalesHistory, append(history, archived...))
}
