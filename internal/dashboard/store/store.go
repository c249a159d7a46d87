package store

import (
	"context"

	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) ListHistory(ctx context.Context) ([]*dashboard.HistoryPoint, error) {
	return storage.Load[*dashboard.HistoryPoint](ctx, s.db, storage.DashboardHistory)
}

func (s *Store) SaveHistory(ctx context.Context, points []*dashboard.HistoryPoint) error {
	return storage.Save(ctx, s.db, storage.DashboardHistory, points)
}
