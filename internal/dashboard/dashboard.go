package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/report"
)

// HistoryPoint is one immutable entry of the profit history, appended per reset.
type HistoryPoint struct {
	ID          uuid.UUID  `json:"id"`
	Period      period.Key `json:"month"`
	Date        time.Time  `json:"date"`
	Revenue     int64      `json:"revenue"`
	Expense     int64      `json:"expense"`
	Profit      int64      `json:"profit"`
	Purchases   int64      `json:"purchases"`
	Maintenance int64      `json:"maintenance"`
	Salaries    int64      `json:"salaries"`
	ArchivedAt  time.Time  `json:"archivedAt"`
}

// PointFrom builds the history point for a closed period from its totals.
func PointFrom(key period.Key, totals report.Totals, at time.Time) *HistoryPoint {
	return &HistoryPoint{
		ID:          uuid.New(),
		Period:      key,
		Date:        at,
		Revenue:     totals.Revenue,
		Expense:     totals.TotalExpense,
		Profit:      totals.Profit,
		Purchases:   totals.Purchases,
		Maintenance: totals.Maintenance,
		Salaries:    totals.Salaries,
		ArchivedAt:  at,
	}
}

// PeriodSummary is the sum of every point recorded for a period.
type PeriodSummary struct {
	Period      period.Key `json:"month"`
	Points      int        `json:"points"`
	Revenue     int64      `json:"revenue"`
	Expense     int64      `json:"expense"`
	Profit      int64      `json:"profit"`
	Purchases   int64      `json:"purchases"`
	Maintenance int64      `json:"maintenance"`
	Salaries    int64      `json:"salaries"`
}

func (s *PeriodSummary) add(p *HistoryPoint) {
	s.Points++
	s.Revenue += p.Revenue
	s.Expense += p.Expense
	s.Profit += p.Profit
	s.Purchases += p.Purchases
	s.Maintenance += p.Maintenance
	s.Salaries += p.Salaries
}
