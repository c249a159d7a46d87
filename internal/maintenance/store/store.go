package store

import (
	"context"

	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) ListMaintenance(ctx context.Context) ([]*maintenance.Maintenance, error) {
	return storage.Load[*maintenance.Maintenance](ctx, s.db, storage.Maintenance)
}

func (s *Store) SaveMaintenance(ctx context.Context, records []*maintenance.Maintenance) error {
	return storage.Save(ctx, s.db, storage.Maintenance, records)
}

func (s *Store) ListHistory(ctx context.Context) ([]*maintenance.Maintenance, error) {
	return storage.Load[*maintenance.Maintenance](ctx, s.db, storage.MaintenanceHistory)
}

func (s *Store) AppendHistory(ctx context.Context, records []*maintenance.Maintenance) error {
	history, err := s.ListHistory(ctx)
	if err != nil {
		return err
	}

	return storage.Save(ctx, s.db, storage.MaintenanceHistory, append(history, records...))
}
