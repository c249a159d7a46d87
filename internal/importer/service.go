package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/bistro/internal/importer/sheet"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

type PurchaseCreator interface {
	CreateBatch(ctx context.Context, params []purchase.CreateParams) ([]*purchase.Purchase, error)
}

type SaleRecorder interface {
	Record(ctx context.Context, params sales.RecordParams) (*sales.Sale, error)
}

// ArticleMatcher maps a raw spreadsheet label to a known article name, or "".
type ArticleMatcher interface {
	Suggest(ctx context.Context, raw string) (string, error)
}

type Service struct {
	parser    Parser
	purchases PurchaseCreator
	sales     SaleRecorder
	tx        storage.Transactor
	matcher   ArticleMatcher
}

type Option func(*Service)

// WithMatcher renames imported articles through learned aliases.
func WithMatcher(m ArticleMatcher) Option {
	return func(s *Service) { s.matcher = m }
}

func NewService(purchases PurchaseCreator, sold SaleRecorder, tx storage.Transactor, opts ...Option) *Service {
	s := &Service{
		parser:    sheet.NewParser(),
		purchases: purchases,
		sales:     sold,
		tx:        tx,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Parse reads a spreadsheet without storing anything. Article names are
// already resolved through the aliases.
func (s *Service) Parse(ctx context.Context, r io.Reader) (*sheet.Result, error) {
	result, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	s.resolveArticles(ctx, result.Rows)

	return result, nil
}

// resolveArticles replaces raw labels that match an alias. A failing lookup
// keeps the raw label.
func (s *Service) resolveArticles(ctx context.Context, rows []sheet.Row) {
	if s.matcher == nil {
		return
	}

	for i, row := range rows {
		article, err := s.matcher.Suggest(ctx, row.Article)
		if err != nil {
			slog.Warn("alias lookup failed", "article", row.Article, "error", err)
			continue
		}

		if article != "" {
			rows[i].Article = article
		}
	}
}

// Import parses a spreadsheet and stores its rows in one transaction. An empty
// kind accepts whatever the header describes.
func (s *Service) Import(ctx context.Context, kind sheet.Kind, r io.Reader) (*Summary, error) {
	result, err := s.Parse(ctx, r)
	if err != nil {
		return nil, err
	}

	if kind != "" && kind != result.Kind {
		return nil, fmt.Errorf("%w: found %s", ErrKindMismatch, result.Kind)
	}

	summary := &Summary{Kind: result.Kind, Profile: result.Profile, Skipped: result.Skipped}
	if len(result.Rows) == 0 {
		return summary, nil
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		switch result.Kind {
		case sheet.KindPurchases:
			created, err := s.purchases.CreateBatch(ctx, toPurchases(result.Rows))
			if err != nil {
				return fmt.Errorf("creating purchases: %w", err)
			}

			summary.Purchases = len(created)

		case sheet.KindSales:
			for _, params := range toSales(result.Rows) {
				if _, err := s.sales.Record(ctx, params); err != nil {
					return fmt.Errorf("recording sale of %s: %w", params.Date.Format(time.DateOnly), err)
				}

				summary.Sales++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func toPurchases(rows []sheet.Row) []purchase.CreateParams {
	params := make([]purchase.CreateParams, 0, len(rows))
	for _, r := range rows {
		params = append(params, purchase.CreateParams{
			Date:     r.Date,
			Article:  r.Article,
			Quantity: r.Quantity,
			Unit:     r.Unit,
			Amount:   r.Price,
			Paid:     r.Paid,
		})
	}

	return params
}

// toSales groups rows by day, one sale per day in date order.
func toSales(rows []sheet.Row) []sales.RecordParams {
	byDay := make(map[time.Time]*sales.RecordParams)

	var days []time.Time

	for _, r := range rows {
		p, ok := byDay[r.Date]
		if !ok {
			p = &sales.RecordParams{Date: r.Date}
			byDay[r.Date] = p
			days = append(days, r.Date)
		}

		p.Lines = append(p.Lines, sales.Line{Article: r.Article, Quantity: r.Quantity, UnitPrice: r.Price})
	}

	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	params := make([]sales.RecordParams, 0, len(days))
	for _, d := range days {
		params = append(params, *byDay[d])
	}

	return params
}
