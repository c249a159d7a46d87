package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a collection has never been saved.
var ErrNotFound = errors.New("collection not found")

// Collection names a persisted list of entities.
type Collection string

const (
	Employees          Collection = "employees"
	Purchases          Collection = "purchases"
	Stock              Collection = "stock"
	Maintenance        Collection = "maintenance"
	Sales              Collection = "sales"
	Articles           Collection = "articles"
	MonthlyArchives    Collection = "monthly_archives"
	Settings           Collection = "system_settings"
	DashboardHistory   Collection = "dashboard_history"
	PurchaseHistory    Collection = "historique_purchases"
	MaintenanceHistory Collection = "historique_maintenance"
	SalesHistory       Collection = "historique_sales"
	ArticleAliases     Collection = "article_aliases"
)

//go:generate mockgen -source=storage.go -destination=storage_mock.go -package=storage
type Transactor interface {
	// WithinTx runs fn inside a transaction carried by the context passed to fn.
	// Store calls made with that context join the transaction; it commits when fn
	// returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Store interface {
	Transactor
	Get(ctx context.Context, key Collection) ([]byte, error)
	Put(ctx context.Context, key Collection, payload []byte) error
}

// Load decodes a whole collection. A collection that was never saved reads as empty.
func Load[T any](ctx context.Context, s Store, key Collection) ([]T, error) {
	var items []T

	found, err := LoadValue(ctx, s, key, &items)
	if err != nil || !found {
		return nil, err
	}

	return items, nil
}

// Save replaces a whole collection.
func Save[T any](ctx context.Context, s Store, key Collection, items []T) error {
	if items == nil {
		items = []T{}
	}

	return SaveValue(ctx, s, key, items)
}

// LoadValue decodes a single stored document into dst and reports whether it existed.
func LoadValue(ctx context.Context, s Store, key Collection, dst any) (bool, error) {
	payload, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}

	return true, nil
}

func SaveValue(ctx context.Context, s Store, key Collection, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := s.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}
