package purchase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=purchase
type Repository interface {
	ListPurchases(ctx context.Context) ([]*Purchase, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*Purchase, error)
	SavePurchase(ctx context.Context, p *Purchase) error
	SavePurchases(ctx context.Context, purchases []*Purchase) error
	DeletePurchase(ctx context.Context, id uuid.UUID) error

	ListHistory(ctx context.Context) ([]*Purchase, error)
	AppendHistory(ctx context.Context, purchases []*Purchase) error
}

// StockKeeper keeps inventory in step with purchases.
type StockKeeper interface {
	Receive(ctx context.Context, name, unit string, qty decimal.Decimal, at time.Time) error
	Withdraw(ctx context.Context, name string, qty decimal.Decimal) error
}

type Service struct {
	repo  Repository
	stock StockKeeper
	tx    storage.Transactor
}

func NewService(repo Repository, stock StockKeeper, tx storage.Transactor) *Service {
	return &Service{repo: repo, stock: stock, tx: tx}
}

type CreateParams struct {
	Date     time.Time       `validate:"required"`
	Article  string          `validate:"required"`
	Quantity decimal.Decimal `validate:"-"`
	Unit     string
	Amount   int64 `validate:"gte=0"`
	Paid     bool
}

func (p CreateParams) validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Quantity.Sign() <= 0 {
		return validate.Invalid("Quantity", "gt")
	}

	return nil
}

// Create records the purchase and adds its quantity to stock in one transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Purchase, error) {
	created, err := s.CreateBatch(ctx, []CreateParams{params})
	if err != nil {
		return nil, err
	}

	return created[0], nil
}

func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Purchase, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	purchases := paramsToPurchases(params)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, p := range purchases {
			if err := s.repo.SavePurchase(ctx, p); err != nil {
				return fmt.Errorf("saving purchase: %w", err)
			}

			if err := s.stock.Receive(ctx, p.Article, p.Unit, p.Quantity, p.Date); err != nil {
				return fmt.Errorf("receiving stock: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return purchases, nil
}

func (s *Service) SetPaid(ctx context.Context, id uuid.UUID, paid bool) (*Purchase, error) {
	p, err := s.repo.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Paid = paid

	if err := s.repo.SavePurchase(ctx, p); err != nil {
		return nil, fmt.Errorf("saving purchase: %w", err)
	}

	return p, nil
}

// Delete removes the purchase and takes its quantity back out of stock.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetPurchase(ctx, id)
		if err != nil {
			return err
		}

		if err := s.repo.DeletePurchase(ctx, id); err != nil {
			return fmt.Errorf("deleting purchase: %w", err)
		}

		if err := s.stock.Withdraw(ctx, p.Article, p.Quantity); err != nil {
			return fmt.Errorf("withdrawing stock: %w", err)
		}

		return nil
	})
}

type ListFilter struct {
	Period *period.Key
	Paid   *bool
}

func (f ListFilter) match(p *Purchase) bool {
	if f.Period != nil && !f.Period.Contains(p.Date) {
		return false
	}

	if f.Paid != nil && p.Paid != *f.Paid {
		return false
	}

	return true
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Purchase, error) {
	all, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(all, func(p *Purchase) bool { return !filter.match(p) }), nil
}

// History lists archived purchases, optionally restricted to the period they were archived under.
func (s *Service) History(ctx context.Context, archived *period.Key) ([]*Purchase, error) {
	all, err := s.repo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	if archived == nil {
		return all, nil
	}

	return slices.DeleteFunc(all, func(p *Purchase) bool { return p.ArchivedPeriod != *archived }), nil
}

// ClosePeriod moves every live purchase into history tagged with the closing period.
func (s *Service) ClosePeriod(ctx context.Context, closing period.Key, at time.Time) error {
	live, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return err
	}

	for _, p := range live {
		p.Archive(closing, at)
	}

	if err := s.repo.AppendHistory(ctx, live); err != nil {
		return fmt.Errorf("archiving purchases: %w", err)
	}

	if err := s.repo.SavePurchases(ctx, nil); err != nil {
		return fmt.Errorf("clearing purchases: %w", err)
	}

	return nil
}

// Close archives the live purchases on their own, outside the monthly reset,
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

func paramsToPurchases(params []CreateParams) []*Purchase {
	purchases := make([]*Purchase, len(params))
	for i, p := range params {
		purchases[i] = &Purchase{
			ID:       uuid.New(),
			Date:     p.Date,
			Article:  p.Article,
			Quantity: p.Quantity,
			Unit:     p.Unit,
			Amount:   p.Amount,
			Paid:     p.Paid,
		}
	}

	return purchases
}
