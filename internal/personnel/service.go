package personnel

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/settings"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=personnel
type Repository interface {
	ListEmployees(ctx context.Context) ([]*Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error)
	SaveEmployee(ctx context.Context, e *Employee) error
	SaveEmployees(ctx context.Context, employees []*Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

type SettingsReader interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type Service struct {
	repo     Repository
	settings SettingsReader
	now      func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, settings SettingsReader, opts ...Option) *Service {
	s := &Service{repo: repo, settings: settings, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type HireParams struct {
	FirstName          string `validate:"required"`
	LastName           string `validate:"required"`
	Role               string
	SalaryPerDay       int64  `validate:"gte=0"`
	FixedMonthlySalary *int64 `validate:"omitempty,gte=0"`
	// SickAllowance defaults to the configured allotment when nil.
	SickAllowance *int `validate:"omitempty,gte=0"`
}

func (s *Service) Hire(ctx context.Context, params HireParams) (*Employee, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	allowance, err := s.allowance(ctx, params.SickAllowance)
	if err != nil {
		return nil, err
	}

	e := &Employee{
		ID:                 uuid.New(),
		FirstName:          params.FirstName,
		LastName:           params.LastName,
		Role:               params.Role,
		SalaryPerDay:       params.SalaryPerDay,
		FixedMonthlySalary: params.FixedMonthlySalary,
		SickAllowance:      allowance,
		SickBalance:        allowance,
		Presences:          []Presence{},
		CreatedAt:          s.now(),
	}

	if err := s.repo.SaveEmployee(ctx, e); err != nil {
		return nil, fmt.Errorf("saving employee: %w", err)
	}

	return e, nil
}

type UpdateParams struct {
	FirstName    *string `validate:"omitempty,min=1"`
	LastName     *string `validate:"omitempty,min=1"`
	Role         *string
	SalaryPerDay *int64 `validate:"omitempty,gte=0"`
	// FixedMonthlySalary set to zero clears the override.
	FixedMonthlySalary *int64 `validate:"omitempty,gte=0"`
	SickAllowance      *int   `validate:"omitempty,gte=0"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Employee, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(e *Employee) error {
		if params.FirstName != nil {
			e.FirstName = *params.FirstName
		}

		if params.LastName != nil {
			e.LastName = *params.LastName
		}

		if params.Role != nil {
			e.Role = *params.Role
		}

		if params.SalaryPerDay != nil {
			e.SalaryPerDay = *params.SalaryPerDay
		}

		if params.FixedMonthlySalary != nil {
			e.FixedMonthlySalary = nil
			if *params.FixedMonthlySalary > 0 {
				e.FixedMonthlySalary = params.FixedMonthlySalary
			}
		}

		if params.SickAllowance != nil {
			e.SickAllowance = *params.SickAllowance
		}

		e.Recount()

		return nil
	})
}

// AddAdvance records money paid ahead of the payslip; it is deducted from net pay.
func (s *Service) AddAdvance(ctx context.Context, id uuid.UUID, amount int64) (*Employee, error) {
	if amount <= 0 {
		return nil, validate.Invalid("amount", "gt")
	}

	return s.mutate(ctx, id, func(e *Employee) error {
		e.Advance += amount
		return nil
	})
}

func (s *Service) AddPresence(ctx context.Context, id uuid.UUID, date time.Time, status Status) (*Employee, error) {
	return s.mutate(ctx, id, func(e *Employee) error {
		return e.AddPresence(date, status)
	})
}

func (s *Service) EditPresence(ctx context.Context, id uuid.UUID, date time.Time, status Status) (*Employee, error) {
	return s.mutate(ctx, id, func(e *Employee) error {
		return e.EditPresence(date, status)
	})
}

func (s *Service) DeletePresence(ctx context.Context, id uuid.UUID, date time.Time) (*Employee, error) {
	return s.mutate(ctx, id, func(e *Employee) error {
		return e.DeletePresence(date)
	})
}

// mutate loads an active employee, applies fn and saves only when fn succeeds.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(e *Employee) error) (*Employee, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.Deleted {
		return nil, ErrRemoved
	}

	if err := fn(e); err != nil {
		return nil, err
	}

	e.UpdatedAt = new(s.now())

	if err := s.repo.SaveEmployee(ctx, e); err != nil {
		return nil, fmt.Errorf("saving employee: %w", err)
	}

	return e, nil
}

// Remove soft-deletes the employee; it moves to the removed list with its history intact.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return err
	}

	if e.Deleted {
		return nil
	}

	e.Deleted = true
	e.DeletedAt = new(s.now())

	if err := s.repo.SaveEmployee(ctx, e); err != nil {
		return fmt.Errorf("saving employee: %w", err)
	}

	return nil
}

func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*Employee, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Deleted = false
	e.DeletedAt = nil
	e.UpdatedAt = new(s.now())

	if err := s.repo.SaveEmployee(ctx, e); err != nil {
		return nil, fmt.Errorf("saving employee: %w", err)
	}

	return e, nil
}

// Purge deletes the employee permanently.
func (s *Service) Purge(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEmployee(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

// List returns employees that have not been removed.
func (s *Service) List(ctx context.Context) ([]*Employee, error) {
	all, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(all, func(e *Employee) bool { return e.Deleted }), nil
}

// ListRemoved returns removed employees, most recently removed first.
func (s *Service) ListRemoved(ctx context.Context) ([]*Employee, error) {
	all, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	removed := slices.DeleteFunc(all, func(e *Employee) bool { return !e.Deleted })
	slices.SortStableFunc(removed, func(a, b *Employee) int {
		return cmp.Compare(deletedAt(b), deletedAt(a))
	})

	return removed, nil
}

func deletedAt(e *Employee) int64 {
	if e.DeletedAt == nil {
		return 0
	}

	return e.DeletedAt.UnixNano()
}

// ClosePeriod resets every active employee to a fresh period with the configured
// sick allowance. Removed employees are left untouched.
func (s *Service) ClosePeriod(ctx context.Context, _ period.Key, at time.Time) error {
	allowance, err := s.allowance(ctx, nil)
	if err != nil {
		return err
	}

	all, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return err
	}

	for _, e := range all {
		if e.Deleted {
			continue
		}

		e.StartPeriod(allowance)
		e.UpdatedAt = new(at)
	}

	if err := s.repo.SaveEmployees(ctx, all); err != nil {
		return fmt.Errorf("saving employees: %w", err)
	}

	return nil
}

func (s *Service) allowance(ctx context.Context, override *int) (int, error) {
	if override != nil {
		return *override, nil
	}

	st, err := s.settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading settings: %w", err)
	}

	return st.SickAllowance, nil
}
