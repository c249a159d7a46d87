package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	"github.com/MrJamesThe3rd/bistro/internal/report"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
)

type Snapshotter interface {
	Snapshot(ctx context.Context, asOf time.Time) (*report.Snapshot, error)
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

type InventoryLister interface {
	ListStock(ctx context.Context) ([]*inventory.StockItem, error)
	ListArticles(ctx context.Context) ([]*inventory.Article, error)
}

// Bundle is the read-only copy of the live data handed to the writers.
type Bundle struct {
	Period      period.Key
	GeneratedAt time.Time
	Employees   []*personnel.Employee
	Purchases   []*purchase.Purchase
	Stock       []*inventory.StockItem
	Maintenance []*maintenance.Maintenance
	Sales       []*sales.Sale
	Articles    []*inventory.Article
	Totals      report.Totals
}

// Service gathers the live collections for the workbook and JSON exports.
type Service struct {
	snapshots   Snapshotter
	purchases   PurchaseLister
	maintenance MaintenanceLister
	sales       SaleLister
	inventory   InventoryLister
}

func NewService(
	snapshots Snapshotter,
	purchases PurchaseLister,
	maint MaintenanceLister,
	sold SaleLister,
	inv InventoryLister,
) *Service {
	return &Service{
		snapshots:   snapshots,
		purchases:   purchases,
		maintenance: maint,
		sales:       sold,
		inventory:   inv,
	}
}

// Collect reads every live collection. Totals cover the period of asOf.
func (s *Service) Collect(ctx context.Context, asOf time.Time) (*Bundle, error) {
	snap, err := s.snapshots.Snapshot(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("taking snapshot: %w", err)
	}

	b := &Bundle{
		Period:      period.Of(asOf),
		GeneratedAt: asOf,
		Employees:   snap.Employees,
		Totals:      snap.Totals,
	}

	if b.Purchases, err = s.purchases.List(ctx, purchase.ListFilter{}); err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}

	if b.Maintenance, err = s.maintenance.List(ctx, nil); err != nil {
		return nil, fmt.Errorf("listing maintenance: %w", err)
	}

	if b.Sales, err = s.sales.List(ctx, nil); err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}

	if b.Stock, err = s.inventory.ListStock(ctx); err != nil {
		return nil, fmt.Errorf("listing stock: %w", err)
	}

	if b.Articles, err = s.inventory.ListArticles(ctx); err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	return b, nil
}

// FileName is the workbook name for a period, e.g. Cafe_Export_2026-10.xlsx.
func FileName(k period.Key) string {
	return fmt.Sprintf("Cafe_Export_%s.xlsx", k)
}

// GenerateSummary renders the period totals as plain text.
func (s *Service) GenerateSummary(b *Bundle) string {
	var sb strings.Builder

	t := b.Totals

	fmt.Fprintf(&sb, "%s\n\n", b.Period.Label())
	fmt.Fprintf(&sb, "* Revenue      | %s (%d sales)\n", amount(t.Revenue), t.SaleCount)
	fmt.Fprintf(&sb, "* Salaries     | %s\n", amount(t.Salaries))
	fmt.Fprintf(&sb, "* Purchases    | %s\n", amount(t.Purchases))
	fmt.Fprintf(&sb, "* Maintenance  | %s\n", amount(t.Maintenance))
	fmt.Fprintf(&sb, "* Total expense| %s\n", amount(t.TotalExpense))
	fmt.Fprintf(&sb, "* Profit       | %s (%s%%)\n", amount(t.Profit), t.ProfitMargin.StringFixed(2))

	return sb.String()
}

func amount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
