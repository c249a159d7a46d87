package maintenance

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

type Repository interface {
	ListMaintenance(ctx context.Context) ([]*Maintenance, error)
	SaveMaintenance(ctx context.Context, records []*Maintenance) error
	ListHistory(ctx context.Context) ([]*Maintenance, error)
	AppendHistory(ctx context.Context, records []*Maintenance) error
}

type Service struct {
	repo Repository
	tx   storage.Transactor
}

func NewService(repo Repository, tx storage.Transactor) *Service {
	return &Service{repo: repo, tx: tx}
}

type CreateParams struct {
	Date        time.Time `validate:"required"`
	Service     string    `validate:"required"`
	Duration    string
	Description string
	Amount      int64 `validate:"gte=0"`
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Maintenance, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	all, err := s.repo.ListMaintenance(ctx)
	if err != nil {
		return nil, err
	}

	m := &Maintenance{
		ID:          uuid.New(),
		Date:        params.Date,
		Service:     params.Service,
		Duration:    params.Duration,
		Description: params.Description,
		Amount:      params.Amount,
	}

	if err := s.repo.SaveMaintenance(ctx, append(all, m)); err != nil {
		return nil, fmt.Errorf("saving maintenance: %w", err)
	}

	return m, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	all, err := s.repo.ListMaintenance(ctx)
	if err != nil {
		return err
	}

	n := len(all)

	all = slices.DeleteFunc(all, func(m *Maintenance) bool { return m.ID == id })
	if len(all) == n {
		return ErrNotFound
	}

	return s.repo.SaveMaintenance(ctx, all)
}

// List returns live records, restricted to a period when one is given.
func (s *Service) List(ctx context.Context, in *period.Key) ([]*Maintenance, error) {
	all, err := s.repo.ListMaintenance(ctx)
	if err != nil {
		return nil, err
	}

	if in == nil {
		return all, nil
	}

	return slices.DeleteFunc(all, func(m *Maintenance) bool { return !in.Contains(m.Date) }), nil
}

func (s *Service) History(ctx context.Context, archived *period.Key) ([]*Maintenance, error) {
	all, err := s.repo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	if archived == nil {
		return all, nil
	}

	return slices.DeleteFunc(all, func(m *Maintenance) bool { return m.ArchivedPeriod != *archived }), nil
}

// ClosePeriod moves every live record into history tagged with the closing period.
func (s *Service) ClosePeriod(ctx context.Context, closing period.Key, at time.Time) error {
	live, err := s.repo.ListMaintenance(ctx)
	if err != nil {
		return err
	}

	for _, m := range live {
		m.Archive(closing, at)
	}

	if err := s.repo.AppendHistory(ctx, live); err != nil {
		return fmt.Errorf("archiving maintenance: %w", err)
	}

	if err := s.repo.SaveMaintenance(ctx, nil); err != nil {
		return fmt.Errorf("clearing maintenance: %w", err)
	}

	return nil
}

// Close archives the live records on their own, outside the monthly reset,
// under the period containing at.
func (s *Service) Close(ctx context.Context, at time.Time) (period.Key, error) {
	closing := period.Of(at)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.ClosePeriod(ctx, closing, at)
	})
	if err != nil {
		return "", err
	}

	return closing, nil
}
