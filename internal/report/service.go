package report

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
)

type EmployeeLister interface {
	List(ctx context.Context) ([]*personnel.Employee, error)
}

type PurchaseLister interface {
	List(ctx context.Context, filter purchase.ListFilter) ([]*purchase.Purchase, error)
}

type MaintenanceLister interface {
	List(ctx context.Context, in *period.Key) ([]*maintenance.Maintenance, error)
}

type SaleLister interface {
	List(ctx context.Context, in *period.Key) ([]*sales.Sale, error)
}

// Service reads the live collections and summarises them. Nothing is cached.
type Service struct {
	employees   EmployeeLister
	purchases   PurchaseLister
	maintenance MaintenanceLister
	sales       SaleLister
}

func NewService(
	employees EmployeeLister,
	purchases PurchaseLister,
	maint MaintenanceLister,
	sold SaleLister,
) *Service {
	return &Service{
		employees:   employees,
		purchases:   purchases,
		maintenance: maint,
		sales:       sold,
	}
}

// Snapshot is everything an archive or an export needs about a period.
type Snapshot struct {
	AsOf      time.Time
	Employees []*personnel.Employee
	Data      PeriodData
	Totals    Totals
}

func (s *Service) CurrentPeriodData(ctx context.Context, asOf time.Time) (PeriodData, error) {
	purchases, err := s.purchases.List(ctx, purchase.ListFilter{})
	if err != nil {
		return PeriodData{}, fmt.Errorf("listing purchases: %w", err)
	}

	maint, err := s.maintenance.List(ctx, nil)
	if err != nil {
		return PeriodData{}, fmt.Errorf("listing maintenance: %w", err)
	}

	sold, err := s.sales.List(ctx, nil)
	if err != nil {
		return PeriodData{}, fmt.Errorf("listing sales: %w", err)
	}

	return FilterPeriod(asOf, purchases, maint, sold), nil
}

func (s *Service) Totals(ctx context.Context, asOf time.Time) (Totals, error) {
	snap, err := s.Snapshot(ctx, asOf)
	if err != nil {
		return Totals{}, err
	}

	return snap.Totals, nil
}

// Snapshot captures the period data, the totals and a deep copy of the active
// employees as of the given date.
func (s *Service) Snapshot(ctx context.Context, asOf time.Time) (*Snapshot, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}

	data, err := s.CurrentPeriodData(ctx, asOf)
	if err != nil {
		return nil, err
	}

	copies := make([]*personnel.Employee, 0, len(employees))
	for _, e := range employees {
		copies = append(copies, e.Clone())
	}

	return &Snapshot{
		AsOf:      asOf,
		Employees: copies,
		Data:      data,
		Totals:    ComputeTotals(copies, data),
	}, nil
}
