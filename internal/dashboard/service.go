package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	ListHistory(ctx context.Context) ([]*HistoryPoint, error)
	SaveHistory(ctx context.Context, points []*HistoryPoint) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends a point. Points are never merged, so a period reset twice
// has two points.
func (s *Service) Record(ctx context.Context, point *HistoryPoint) error {
	points, err := s.repo.ListHistory(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.SaveHistory(ctx, append(points, point)); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	return nil
}

func (s *Service) History(ctx context.Context) ([]*HistoryPoint, error) {
	return s.repo.ListHistory(ctx)
}

// ByPeriod sums the points sharing a period key, oldest period first.
func (s *Service) ByPeriod(ctx context.Context) ([]*PeriodSummary, error) {
	points, err := s.repo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]*PeriodSummary)

	var out []*PeriodSummary

	for _, p := range points {
		sum, ok := index[string(p.Period)]
		if !ok {
			sum = &PeriodSummary{Period: p.Period}
			index[string(p.Period)] = sum
			out = append(out, sum)
		}

		sum.add(p)
	}

	slices.SortFunc(out, func(a, b *PeriodSummary) int {
		return strings.Compare(string(a.Period), string(b.Period))
	})

	return out, nil
}
