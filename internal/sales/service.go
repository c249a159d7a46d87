package sales

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

type Repository interface {
	ListSales(ctx context.Context) ([]*Sale, error)
	SaveSales(ctx context.Context, sales []*Sale) error
	ListHistory(ctx context.Context) ([]*Sale, error)
	AppendHistory(ctx context.Context, sales []*Sale) error
}

// StockConsumer depletes and projects stock through article bills of materials.
type StockConsumer interface {
	Consume(ctx context.Context, usages []inventory.Usage) error
	Project(ctx context.Context, usages []inventory.Usage) ([]inventory.Requirement, error)
}

type Service struct {
	repo  Repository
	stock StockConsumer
	tx    storage.Transactor
}

func NewService(repo Repository, stock StockConsumer, tx storage.Transactor) *Service {
	return &Service{repo: repo, stock: stock, tx: tx}
}

type RecordParams struct {
	Date  time.Time `validate:"required"`
	Lines []Line    `validate:"-"`
}

// Record keeps the complete lines of the sale, stores it and consumes the stock
// its articles use, in one transaction.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Sale, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	lines := CompleteLines(params.Lines)
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	sale := &Sale{
		ID:    uuid.New(),
		Date:  params.Date,
		Lines: lines,
		Total: Total(lines),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		all, err := s.repo.ListSales(ctx)
		if err != nil {
			return err
		}

		if err := s.repo.SaveSales(ctx, append(all, sale)); err != nil {
			return fmt.Errorf("saving sale: %w", err)
		}

		if err := s.stock.Consume(ctx, usages(lines)); err != nil {
			return fmt.Errorf("consuming stock: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}

// Preview projects the stock the lines would consume without recording anything.
func (s *Service) Preview(ctx context.Context, lines []Line) ([]inventory.Requirement, error) {
	return s.stock.Project(ctx, usages(CompleteLines(lines)))
}

// Delete removes a sale. Stock consumed by it is not restored.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	all, err := s.repo.ListSales(ctx)
	if err != nil {
		return err
	}

	n := len(all)

	all = slices.DeleteFunc(all, func(sale *Sale) bool { return sale.ID == id })
	if len(all) == n {
		return ErrNotFound
	}

	return s.repo.SaveSales(ctx, all)
}

func (s *Service) List(ctx context.Context, in *period.Key) ([]*Sale, error) {
	all, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	if in == nil {
		return all, nil
	}

	return slices.DeleteFunc(all, func(sale *Sale) bool { return !in.Contains(sale.Date) }), nil
}

func (s *Service) History(ctx context.Context, archived *period.Key) ([]*Sale, error) {
	all, err := s.repo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	if archived == nil {
		return all, nil
	}

	return slices.DeleteFunc(all, func(sale *Sale) bool { return sale.ArchivedPeriod != *archived }), nil
}

// ClosePeriod moves every live sale into history tagged with the closing period.
func (s *Service) ClosePeriod(ctx context.Context, closing period.Key, at time.Time) error {
	live, err := s.repo.ListSales(ctx)
	if err != nil {
		return err
	}

	for _, sale := range live {
		sale.Archive(closing, at)
	}

	if err := s.repo.AppendHistory(ctx, live); err != nil {
		return fmt.Errorf("archiving sales: %w", err)
	}

	if err := s.repo.SaveSales(ctx, nil); err != nil {
		return fmt.Errorf("clearing sales: %w", err)
	}

	return nil
}

// Close archives the live sales on their own, outside the monthly reset,
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

func CompleteLines(lines []Line) []Line {
	var complete []Line

	for _, l := range lines {
		if l.Complete() {
			complete = append(complete, l)
		}
	}

	return complete
}

func usages(lines []Line) []inventory.Usage {
	out := make([]inventory.Usage, 0, len(lines))
	for _, l := range lines {
		out = append(out, inventory.Usage{Article: l.Article, Quantity: l.Quantity})
	}

	return out
}
