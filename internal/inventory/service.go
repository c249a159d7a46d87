package inventory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

type Repository interface {
	ListStock(ctx context.Context) ([]*StockItem, error)
	SaveStock(ctx context.Context, items []*StockItem) error
	ListArticles(ctx context.Context) ([]*Article, error)
	SaveArticles(ctx context.Context, articles []*Article) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListStock(ctx context.Context) ([]*StockItem, error) {
	return s.repo.ListStock(ctx)
}

func (s *Service) DeleteStockItem(ctx context.Context, id uuid.UUID) error {
	items, err := s.repo.ListStock(ctx)
	if err != nil {
		return err
	}

	n := len(items)

	items = slices.DeleteFunc(items, func(i *StockItem) bool { return i.ID == id })
	if len(items) == n {
		return ErrStockItemNotFound
	}

	return s.repo.SaveStock(ctx, items)
}

// Receive adds quantity to the stock item matching name, creating it when absent.
func (s *Service) Receive(ctx context.Context, name, unit string, qty decimal.Decimal, at time.Time) error {
	items, err := s.repo.ListStock(ctx)
	if err != nil {
		return err
	}

	if idx := findByName(items, name); idx >= 0 {
		items[idx].Quantity = items[idx].Quantity.Add(qty)
		return s.repo.SaveStock(ctx, items)
	}

	if strings.TrimSpace(unit) == "" {
		unit = DefaultUnit
	}

	items = append(items, &StockItem{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Quantity: qty,
		Unit:     unit,
		AddedAt:  at,
	})

	return s.repo.SaveStock(ctx, items)
}

// Withdraw removes quantity from the stock item matching name and drops the
// item once nothing is left. Unknown names are ignored.
func (s *Service) Withdraw(ctx context.Context, name string, qty decimal.Decimal) error {
	items, err := s.repo.ListStock(ctx)
	if err != nil {
		return err
	}

	idx := findByName(items, name)
	if idx < 0 {
		return nil
	}

	items[idx].Quantity = items[idx].Quantity.Sub(qty)
	if items[idx].Quantity.Sign() <= 0 {
		items = slices.Delete(items, idx, idx+1)
	}

	return s.repo.SaveStock(ctx, items)
}

func (s *Service) ListArticles(ctx context.Context) ([]*Article, error) {
	return s.repo.ListArticles(ctx)
}

type ComponentParams struct {
	StockItemID uuid.UUID       `validate:"required"`
	Quantity    decimal.Decimal `validate:"-"`
}

type CreateArticleParams struct {
	Name       string            `validate:"required"`
	Components []ComponentParams `validate:"dive"`
}

func (s *Service) CreateArticle(ctx context.Context, params CreateArticleParams) (*Article, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return nil, err
	}

	if slices.ContainsFunc(articles, func(a *Article) bool { return sameName(a.Name, params.Name) }) {
		return nil, ErrArticleExists
	}

	stock, err := s.repo.ListStock(ctx)
	if err != nil {
		return nil, err
	}

	article := &Article{ID: uuid.New(), Name: strings.TrimSpace(params.Name), Components: []Component{}}

	for _, c := range params.Components {
		if c.Quantity.Sign() <= 0 {
			return nil, validate.Invalid("Quantity", "gt")
		}

		idx := slices.IndexFunc(stock, func(i *StockItem) bool { return i.ID == c.StockItemID })
		if idx < 0 {
			return nil, fmt.Errorf("component %s: %w", c.StockItemID, ErrStockItemNotFound)
		}

		article.Components = append(article.Components, Component{
			StockItemID:   c.StockItemID,
			StockItemName: stock[idx].Name,
			Quantity:      c.Quantity,
		})
	}

	if err := s.repo.SaveArticles(ctx, append(articles, article)); err != nil {
		return nil, fmt.Errorf("saving articles: %w", err)
	}

	return article, nil
}

func (s *Service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return err
	}

	n := len(articles)

	articles = slices.DeleteFunc(articles, func(a *Article) bool { return a.ID == id })
	if len(articles) == n {
		return ErrArticleNotFound
	}

	return s.repo.SaveArticles(ctx, articles)
}

// Consume depletes stock through each sold article's bill of materials.
// Quantities never drop below zero; articles without components consume nothing.
func (s *Service) Consume(ctx context.Context, usages []Usage) error {
	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return err
	}

	stock, err := s.repo.ListStock(ctx)
	if err != nil {
		return err
	}

	changed := false

	for _, u := range usages {
		article := findArticle(articles, u.Article)
		if article == nil {
			continue
		}

		for _, c := range article.Components {
			item := findComponentStock(stock, c)
			if item == nil {
				continue
			}

			item.Quantity = decimal.Max(decimal.Zero, item.Quantity.Sub(c.Quantity.Mul(u.Quantity)))
			changed = true
		}
	}

	if !changed {
		return nil
	}

	return s.repo.SaveStock(ctx, stock)
}

// Project reports, per stock item, how much the usages would consume against what is on hand.
func (s *Service) Project(ctx context.Context, usages []Usage) ([]Requirement, error) {
	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return nil, err
	}

	stock, err := s.repo.ListStock(ctx)
	if err != nil {
		return nil, err
	}

	var reqs []Requirement

	index := make(map[uuid.UUID]int)

	for _, u := range usages {
		article := findArticle(articles, u.Article)
		if article == nil || u.Quantity.Sign() <= 0 {
			continue
		}

		for _, c := range article.Components {
			needed := c.Quantity.Mul(u.Quantity)

			if i, ok := index[c.StockItemID]; ok {
				reqs[i].Needed = reqs[i].Needed.Add(needed)
				continue
			}

			req := Requirement{StockItemID: c.StockItemID, Name: c.StockItemName, Needed: needed, Available: decimal.Zero}
			if item := findComponentStock(stock, c); item != nil {
				req.Available = item.Quantity
				req.Unit = item.Unit
			}

			index[c.StockItemID] = len(reqs)
			reqs = append(reqs, req)
		}
	}

	for i := range reqs {
		reqs[i].Sufficient = reqs[i].Available.GreaterThanOrEqual(reqs[i].Needed)
	}

	return reqs, nil
}

func findByName(items []*StockItem, name string) int {
	return slices.IndexFunc(items, func(i *StockItem) bool { return sameName(i.Name, name) })
}

func findArticle(articles []*Article, name string) *Article {
	idx := slices.IndexFunc(articles, func(a *Article) bool { return sameName(a.Name, name) })
	if idx < 0 {
		return nil
	}

	return articles[idx]
}

// findComponentStock matches by id first, then by the name copied into the component.
func findComponentStock(stock []*StockItem, c Component) *StockItem {
	if idx := slices.IndexFunc(stock, func(i *StockItem) bool { return i.ID == c.StockItemID }); idx >= 0 {
		return stock[idx]
	}

	if idx := findByName(stock, c.StockItemName); idx >= 0 {
		return stock[idx]
	}

	return nil
}
