package store

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type Store struct {
	db storage.Store
}

func New(db storage.Store) *Store {
	return &Store{db: db}
}

func (s *Store) ListEmployees(ctx context.Context) ([]*personnel.Employee, error) {
	return storage.Load[*personnel.Employee](ctx, s.db, storage.Employees)
}

func (s *Store) GetEmployee(ctx context.Context, id uuid.UUID) (*personnel.Employee, error) {
	all, err := s.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(all, func(e *personnel.Employee) bool { return e.ID == id })
	if idx < 0 {
		return nil, personnel.ErrNotFound
	}

	return all[idx], nil
}

// SaveEmployee replaces the employee with the same id or appends a new one.
func (s *Store) SaveEmployee(ctx context.Context, e *personnel.Employee) error {
	all, err := s.ListEmployees(ctx)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(all, func(x *personnel.Employee) bool { return x.ID == e.ID })
	if idx < 0 {
		all = append(all, e)
	} else {
		all[idx] = e
	}

	return s.SaveEmployees(ctx, all)
}

func (s *Store) SaveEmployees(ctx context.Context, employees []*personnel.Employee) error {
	return storage.Save(ctx, s.db, storage.Employees, employees)
}

func (s *Store) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	all, err := s.ListEmployees(ctx)
	if err != nil {
		return err
	}

	n := len(all)

	all = slices.DeleteFunc(all, func(e *personnel.Employee) bool { return e.ID == id })
	if len(all) == n {
		return personnel.ErrNotFound
	}

	return s.SaveEmployees(ctx, all)
}
