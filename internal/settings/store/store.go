package store

import (
	"context"

	"github.com/MrJamesThe3rd/bistro/internal/settings"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) GetSettings(ctx context.Context) (*settings.Settings, error) {
	var st settings.Settings

	found, err := storage.LoadValue(ctx, s.db, storage.Settings, &st)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, settings.ErrNotFound
	}

	return &st, nil
}

func (s *Store) SaveSettings(ctx context.Context, st *settings.Settings) error {
	return storage.SaveValue(ctx, s.db, storage.Settings, st)
}
