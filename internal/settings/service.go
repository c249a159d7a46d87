package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settings
type Repository interface {
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, s *Settings) error
}

type Service struct {
	repo             Repository
	defaultAllowance int
	now              func() time.Time
}

type Option func(*Service)

// WithDefaultAllowance sets the sick allotment used before settings are first saved.
func WithDefaultAllowance(days int) Option {
	return func(s *Service) { s.defaultAllowance = days }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, defaultAllowance: DefaultSickAllowance, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Get(ctx context.Context) (*Settings, error) {
	st, err := s.repo.GetSettings(ctx)
	if errors.Is(err, ErrNotFound) {
		return Defaults(s.now(), s.defaultAllowance), nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return st, nil
}

type UpdateParams struct {
	SickAllowance int `validate:"gte=0,lte=366"`
}

func (s *Service) Update(ctx context.Context, params UpdateParams) (*Settings, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	st, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	st.SickAllowance = params.SickAllowance
	st.CurrentPeriod = period.Of(s.now())

	if err := s.repo.SaveSettings(ctx, st); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}

	return st, nil
}

// ClosePeriod records a completed reset: the current period becomes the one
// containing at, and at becomes the last reset date.
func (s *Service) ClosePeriod(ctx context.Context, _ period.Key, at time.Time) error {
	st, err := s.Get(ctx)
	if err != nil {
		return err
	}

	st.CurrentPeriod = period.Of(at)
	st.LastResetDate = at

	if err := s.repo.SaveSettings(ctx, st); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}
