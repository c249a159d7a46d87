package store

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) ListPurchases(ctx context.Context) ([]*purchase.Purchase, error) {
	return storage.Load[*purchase.Purchase](ctx, s.db, storage.Purchases)
}

func (s *Store) GetPurchase(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	all, err := s.ListPurchases(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(all, func(p *purchase.Purchase) bool { return p.ID == id })
	if idx < 0 {
		return nil, purchase.ErrNotFound
	}

	return all[idx], nil
}

func (s *Store) SavePurchase(ctx context.Context, p *purchase.Purchase) error {
	all, err := s.ListPurchases(ctx)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(all, func(x *purchase.Purchase) bool { return x.ID == p.ID })
	if idx < 0 {
		all = append(all, p)
	} else {
		all[idx] = p
	}

	return s.SavePurchases(ctx, all)
}

func (s *Store) SavePurchases(ctx context.Context, purchases []*purchase.Purchase) error {
	return storage.Save(ctx, s.db, storage.Purchases, purchases)
}

func (s *Store) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	all, err := s.ListPurchases(ctx)
	if err != nil {
		return err
	}

	n := len(all)

	all = slices.DeleteFunc(all, func(p *purchase.Purchase) bool { return p.ID == id })
	if len(all) == n {
		return purchase.ErrNotFound
	}

	return s.SavePurchases(ctx, all)
}

func (s *Store) ListHistory(ctx context.Context) ([]*purchase.Purchase, error) {
	return storage.Load[*purchase.Purchase](ctx, s.db, storage.PurchaseHistory)
}

func (s *Store) AppendHistory(ctx context.Context, purchases []*purchase.Purchase) error {
	history, err := s.ListHistory(ctx)
	if err != nil {
		return err
	}

	return storage.Save(ctx, s.db, storage.PurchaseHistory, append(history, purchases...))
}
