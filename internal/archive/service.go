package archive

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/report"
	"github.com/MrJamesThe3rd/bistro/internal/storage"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=archive
type Repository interface {
	ListArchives(ctx context.Context) ([]*MonthlyArchive, error)
	SaveArchives(ctx context.Context, archives []*MonthlyArchive) error
}

type Snapshotter interface {
	Snapshot(ctx context.Context, asOf time.Time) (*report.Snapshot, error)
}

type HistoryRecorder interface {
	Record(ctx context.Context, point *dashboard.HistoryPoint) error
}

// PeriodCloser resets the live state it owns at the end of a period.
type PeriodCloser interface {
	ClosePeriod(ctx context.Context, closing period.Key, at time.Time) error
}

// Step is a named PeriodCloser run during a reset.
type Step struct {
	Name   string
	Closer PeriodCloser
}

type Service struct {
	repo      Repository
	snapshots Snapshotter
	history   HistoryRecorder
	tx        storage.Transactor
	steps     []Step
}

// NewService builds the reset workflow. Steps run in the given order after the
// archive and the history point are written; settings must come last.
func NewService(
	repo Repository,
	snapshots Snapshotter,
	history HistoryRecorder,
	tx storage.Transactor,
	steps ...Step,
) *Service {
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		history:   history,
		tx:        tx,
		steps:     steps,
	}
}

type ResetResult struct {
	Archive *MonthlyArchive         `json:"archive"`
	Point   *dashboard.HistoryPoint `json:"point"`
}

// PerformMonthlyReset archives the period containing asOf and starts a new one.
// Every step runs in one transaction: a failure leaves the store as it was.
func (s *Service) PerformMonthlyReset(ctx context.Context, asOf time.Time) (*ResetResult, error) {
	key := period.Of(asOf)
	result := &ResetResult{}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		snap, err := s.snapshots.Snapshot(ctx, asOf)
		if err != nil {
			return fmt.Errorf("taking snapshot: %w", err)
		}

		result.Archive = fromSnapshot(key, snap, asOf)

		archives, err := s.repo.ListArchives(ctx)
		if err != nil {
			return fmt.Errorf("listing archives: %w", err)
		}

		if err := s.repo.SaveArchives(ctx, append(archives, result.Archive)); err != nil {
			return fmt.Errorf("saving archive: %w", err)
		}

		result.Point = dashboard.PointFrom(key, snap.Totals, asOf)
		if err := s.history.Record(ctx, result.Point); err != nil {
			return fmt.Errorf("recording history: %w", err)
		}

		for _, step := range s.steps {
			if err := step.Closer.ClosePeriod(ctx, key, asOf); err != nil {
				return fmt.Errorf("closing %s: %w", step.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		slog.Error("monthly reset failed", "period", key, "error", err)
		return nil, err
	}

	slog.Info("monthly reset done",
		"period", key,
		"employees", len(result.Archive.Employees),
		"revenue", result.Archive.Revenues.Sales,
		"expenses", result.Archive.Expenses.Total,
	)

	return result, nil
}

// List returns archives newest first.
func (s *Service) List(ctx context.Context) ([]*MonthlyArchive, error) {
	archives, err := s.repo.ListArchives(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(archives, func(a, b *MonthlyArchive) int {
		return b.ArchivedAt.Compare(a.ArchivedAt)
	})

	return archives, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*MonthlyArchive, error) {
	archives, err := s.repo.ListArchives(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(archives, func(a *MonthlyArchive) bool { return a.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}

	return archives[idx], nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	archives, err := s.repo.ListArchives(ctx)
	if err != nil {
		return err
	}

	n := len(archives)

	archives = slices.DeleteFunc(archives, func(a *MonthlyArchive) bool { return a.ID == id })
	if len(archives) == n {
		return ErrNotFound
	}

	return s.repo.SaveArchives(ctx, archives)
}
